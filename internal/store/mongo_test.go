package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslateError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{
		{Code: 11000, Message: "E11000 duplicate key error"},
	}}
	passthrough := errors.New("connection reset by peer")

	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(mongo.ErrNoDocuments), ErrNotFound)
	assert.ErrorIs(t, translateError(dup), ErrDuplicateKey)
	assert.Equal(t, passthrough, translateError(passthrough))
}
