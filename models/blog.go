package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogCategory string

const (
	BlogCategoryBuying     BlogCategory = "buying"
	BlogCategorySelling    BlogCategory = "selling"
	BlogCategoryRenting    BlogCategory = "renting"
	BlogCategoryInvestment BlogCategory = "investment"
	BlogCategoryMarketNews BlogCategory = "market-news"
	BlogCategoryTips       BlogCategory = "tips"
	BlogCategoryLifestyle  BlogCategory = "lifestyle"
)

type Blog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Excerpt     string             `json:"excerpt" bson:"excerpt"`
	Content     string             `json:"content" bson:"content"`
	CoverImage  *Image             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	AuthorID    primitive.ObjectID `json:"authorId" bson:"authorId"`
	Category    BlogCategory       `json:"category" bson:"category"`
	Tags        []string           `json:"tags" bson:"tags"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	PublishedAt *time.Time         `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	Views       int64              `json:"views" bson:"views"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type BlogInput struct {
	Title       string       `json:"title" validate:"required,min=3,max=200"`
	Excerpt     string       `json:"excerpt" validate:"required,max=500"`
	Content     string       `json:"content" validate:"required,min=20"`
	CoverImage  *Image       `json:"coverImage" validate:"omitempty"`
	Category    BlogCategory `json:"category" validate:"required,oneof=buying selling renting investment market-news tips lifestyle"`
	Tags        []string     `json:"tags" validate:"dive,max=40"`
	IsPublished bool         `json:"isPublished"`
}

type BlogFilter struct {
	Category BlogCategory
	Tag      string
	Search   string
	// Published is nil for admin listings that include drafts.
	Published *bool
}

func InputFromBlog(b *Blog) BlogInput {
	return BlogInput{
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Content:     b.Content,
		CoverImage:  b.CoverImage,
		Category:    b.Category,
		Tags:        b.Tags,
		IsPublished: b.IsPublished,
	}
}
