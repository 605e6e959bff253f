package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

const artworksCollection = "artworks"

type ArtworkRepository struct {
	col *mongo.Collection
}

func NewArtworkRepository(db *mongo.Database) *ArtworkRepository {
	return &ArtworkRepository{col: db.Collection(artworksCollection)}
}

type imageSetDoc struct {
	Original  string `bson:"original"`
	Thumbnail string `bson:"thumbnail,omitempty"`
	Medium    string `bson:"medium,omitempty"`
}

type artworkDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	Image       imageSetDoc        `bson:"image"`
	Tags        []string           `bson:"tags,omitempty"`
	ArtistID    primitive.ObjectID `bson:"artist_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *artworkDoc) toDomain() *domain.Artwork {
	return &domain.Artwork{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Tags:        d.Tags,
		ArtistID:    d.ArtistID.Hex(),
		CreatedAt:   d.CreatedAt.UTC(),
		Image: domain.ImageSet{
			Original:  d.Image.Original,
			Thumbnail: d.Image.Thumbnail,
			Medium:    d.Image.Medium,
		},
	}
}

func (r *ArtworkRepository) Create(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	artistOID, err := primitive.ObjectIDFromHex(artwork.ArtistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := artworkDoc{
		Title:       artwork.Title,
		Description: artwork.Description,
		Category:    artwork.Category,
		Tags:        artwork.Tags,
		ArtistID:    artistOID,
		CreatedAt:   artwork.CreatedAt,
		Image: imageSetDoc{
			Original:  artwork.Image.Original,
			Thumbnail: artwork.Image.Thumbnail,
			Medium:    artwork.Image.Medium,
		},
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert artwork: %w", err)
	}

	created := *artwork
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArtworkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc artworkDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("find artwork: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArtworkRepository) List(ctx context.Context, filter ports.ArtworkFilter) ([]*domain.Artwork, int64, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.ArtistID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.ArtistID)
		if err != nil {
			return []*domain.Artwork{}, 0, nil
		}
		query["artist_id"] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count artworks: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list artworks: %w", err)
	}

	artworks, err := decodeArtworks(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return artworks, total, nil
}

func (r *ArtworkRepository) FindByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error) {
	oid, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return []*domain.Artwork{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"artist_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list artist artworks: %w", err)
	}
	return decodeArtworks(ctx, cur)
}

func (r *ArtworkRepository) Update(ctx context.Context, id string, update ports.ArtworkUpdate) (*domain.Artwork, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArtworkNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc artworkDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("update artwork: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArtworkRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArtworkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete artwork: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes for list filters and artist pages.
func (r *ArtworkRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeArtworks(ctx context.Context, cur *mongo.Cursor) ([]*domain.Artwork, error) {
	defer cur.Close(ctx)

	artworks := make([]*domain.Artwork, 0)
	for cur.Next(ctx) {
		var doc artworkDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode artwork: %w", err)
		}
		artworks = append(artworks, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate artworks: %w", err)
	}
	return artworks, nil
}
