// Package store declares the persistence contracts used by the services.
// Implementations live in store/mongostore and store/memory.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwal000/Egharbari-sub001/models"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// DuplicateError names the unique index a write collided with.
type DuplicateError struct {
	Index string
}

func (e *DuplicateError) Error() string {
	return "duplicate key on index " + e.Index
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// Unique index names shared by every implementation.
const (
	IndexUserEmail    = "email_unique"
	IndexPropertySlug = "slug_unique"
	IndexPropertyCode = "propertyId_unique"
	IndexBlogSlug     = "slug_unique"
	IndexFavoritePair = "user_property_unique"
)

// DuplicateIndex returns the index name when err is a duplicate key error.
func DuplicateIndex(err error) (string, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup.Index, true
	}
	return "", false
}

type UserPatch struct {
	Name         *string
	Phone        *string
	Address      *models.Address
	Role         *models.Role
	IsActive     *bool
	PasswordHash *string
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter, page models.Page) ([]models.User, int64, error)
	Count(ctx context.Context, filter models.UserFilter) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch UserPatch) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PropertyStore interface {
	// Create inserts the property. A slug or propertyId collision returns a
	// *DuplicateError naming the index.
	Create(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	FindBySlug(ctx context.Context, slug string) (*models.Property, error)
	FindByCode(ctx context.Context, code string) (*models.Property, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error)
	List(ctx context.Context, filter models.PropertyFilter, page models.Page) ([]models.Property, int64, error)
	Count(ctx context.Context, filter models.PropertyFilter) (int64, error)
	Replace(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	Districts(ctx context.Context) ([]string, error)
	// NextCode returns a monotonically increasing listing number starting at 1000.
	NextCode(ctx context.Context) (int64, error)
}

type InquiryStore interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error)
	List(ctx context.Context, filter models.InquiryFilter, page models.Page) ([]models.Inquiry, int64, error)
	Count(ctx context.Context, filter models.InquiryFilter) (int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InquiryStatus) (*models.Inquiry, error)
	// AppendReply pushes reply in one atomic update. When promote is set and
	// the inquiry is still pending, the same update moves it to in_progress.
	AppendReply(ctx context.Context, id primitive.ObjectID, reply models.Reply, promote bool) (*models.Inquiry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type FavoriteStore interface {
	// Insert returns a *DuplicateError when the pair already exists.
	Insert(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error)
	Exists(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, page models.Page) ([]models.Favorite, int64, error)
	// Count counts favorites of one user, or all favorites when userID is nil.
	Count(ctx context.Context, userID *primitive.ObjectID) (int64, error)
	DeleteByProperty(ctx context.Context, propertyID primitive.ObjectID) error
}

type BlogStore interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	List(ctx context.Context, filter models.BlogFilter, page models.Page) ([]models.Blog, int64, error)
	Count(ctx context.Context, filter models.BlogFilter) (int64, error)
	Replace(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
}

// Stores bundles every repository the application needs.
type Stores struct {
	Users      UserStore
	Properties PropertyStore
	Inquiries  InquiryStore
	Favorites  FavoriteStore
	Blogs      BlogStore
}
