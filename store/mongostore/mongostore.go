// Package mongostore implements the store contracts on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prajwal000/Egharbari-sub001/config"
	"github.com/prajwal000/Egharbari-sub001/store"
)

const countersCollection = "counters"

type base struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func (b base) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, b.timeout)
}

// New builds every repository over the configured collections.
func New(client *mongo.Client, cfg config.MongoConfig) *store.Stores {
	mk := func(name string) base {
		return base{collection: config.GetCollection(client, cfg, name), timeout: cfg.Timeout}
	}
	return &store.Stores{
		Users:      &UserStore{base: mk(cfg.Collections.Users)},
		Properties: &PropertyStore{base: mk(cfg.Collections.Properties), counters: config.GetCollection(client, cfg, countersCollection)},
		Inquiries:  &InquiryStore{base: mk(cfg.Collections.Inquiries)},
		Favorites:  &FavoriteStore{base: mk(cfg.Collections.Favorites)},
		Blogs:      &BlogStore{base: mk(cfg.Collections.Blogs)},
	}
}

var dupIndexPattern = regexp.MustCompile(`index: (\S+) dup key`)

// mapErr translates driver errors into the store sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return &store.DuplicateError{Index: duplicateIndexName(err.Error())}
	}
	return err
}

func duplicateIndexName(msg string) string {
	if m := dupIndexPattern.FindStringSubmatch(msg); len(m) == 2 {
		return m[1]
	}
	return "unknown"
}

func containsPattern(s string) string {
	return regexp.QuoteMeta(strings.TrimSpace(s))
}

func exactPattern(s string) string {
	return "^" + regexp.QuoteMeta(strings.TrimSpace(s)) + "$"
}

var (
	_ store.UserStore     = (*UserStore)(nil)
	_ store.PropertyStore = (*PropertyStore)(nil)
	_ store.InquiryStore  = (*InquiryStore)(nil)
	_ store.FavoriteStore = (*FavoriteStore)(nil)
	_ store.BlogStore     = (*BlogStore)(nil)
)
