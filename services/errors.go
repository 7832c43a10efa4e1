package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/store"
)

// storeErr classifies a repository error for the caller.
func storeErr(err error, notFound, failed string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(notFound)
	}
	if _, ok := store.DuplicateIndex(err); ok {
		return apperr.Conflict(failed)
	}
	return apperr.Internal(failed, err)
}

func ParseID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid " + what + " ID")
	}
	return oid, nil
}
