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
)

const enquiriesCollection = "enquiries"

type EnquiryRepository struct {
	col *mongo.Collection
}

func NewEnquiryRepository(db *mongo.Database) *EnquiryRepository {
	return &EnquiryRepository{col: db.Collection(enquiriesCollection)}
}

type enquiryDoc struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	ArtistID  primitive.ObjectID  `bson:"artist_id"`
	ClientID  *primitive.ObjectID `bson:"client_id,omitempty"`
	FirstName string              `bson:"first_name"`
	LastName  string              `bson:"last_name"`
	Email     string              `bson:"email"`
	Message   string              `bson:"message"`
	Status    string              `bson:"status"`
	SentAt    time.Time           `bson:"sent_at"`
}

func (d *enquiryDoc) toDomain() *domain.Enquiry {
	clientID := ""
	if d.ClientID != nil {
		clientID = d.ClientID.Hex()
	}

	return &domain.Enquiry{
		ID:        d.ID.Hex(),
		ArtistID:  d.ArtistID.Hex(),
		ClientID:  clientID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Message:   d.Message,
		Status:    domain.EnquiryStatus(d.Status),
		SentAt:    d.SentAt.UTC(),
	}
}

func (r *EnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error) {
	artistOID, err := primitive.ObjectIDFromHex(enquiry.ArtistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	doc := enquiryDoc{
		ArtistID:  artistOID,
		FirstName: enquiry.FirstName,
		LastName:  enquiry.LastName,
		Email:     enquiry.Email,
		Message:   enquiry.Message,
		Status:    string(enquiry.Status),
		SentAt:    enquiry.SentAt,
	}
	if enquiry.ClientID != "" {
		clientOID, err := primitive.ObjectIDFromHex(enquiry.ClientID)
		if err == nil {
			doc.ClientID = &clientOID
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert enquiry: %w", err)
	}

	created := *enquiry
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EnquiryRepository) FindByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEnquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc enquiryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("find enquiry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EnquiryRepository) FindByArtist(ctx context.Context, artistID string) ([]*domain.Enquiry, error) {
	oid, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return []*domain.Enquiry{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"artist_id": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer cur.Close(ctx)

	enquiries := make([]*domain.Enquiry, 0)
	for cur.Next(ctx) {
		var doc enquiryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode enquiry: %w", err)
		}
		enquiries = append(enquiries, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate enquiries: %w", err)
	}
	return enquiries, nil
}

func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEnquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc enquiryDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("update enquiry status: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the artist inbox index.
func (r *EnquiryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "sent_at", Value: -1}},
	})
	return err
}
