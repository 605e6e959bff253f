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

const usersCollection = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

type socialLinksDoc struct {
	Instagram string `bson:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty"`
}

type userDoc struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	Email             string               `bson:"email"`
	PasswordHash      string               `bson:"password_hash"`
	Role              string               `bson:"role"`
	DisplayName       string               `bson:"display_name"`
	ProfileImage      string               `bson:"profile_image,omitempty"`
	Location          string               `bson:"location,omitempty"`
	Bio               string               `bson:"bio,omitempty"`
	ProfessionalTitle string               `bson:"professional_title,omitempty"`
	Website           string               `bson:"website,omitempty"`
	SocialLinks       socialLinksDoc       `bson:"social_links,omitempty"`
	Categories        []string             `bson:"categories,omitempty"`
	SavedArtists      []primitive.ObjectID `bson:"saved_artists,omitempty"`
	CreatedAt         time.Time            `bson:"created_at"`
	LastLogin         time.Time            `bson:"last_login"`
}

func (d *userDoc) toDomain() *domain.User {
	saved := make([]string, 0, len(d.SavedArtists))
	for _, id := range d.SavedArtists {
		saved = append(saved, id.Hex())
	}

	return &domain.User{
		ID:                d.ID.Hex(),
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		Role:              d.Role,
		DisplayName:       d.DisplayName,
		ProfileImage:      d.ProfileImage,
		Location:          d.Location,
		Bio:               d.Bio,
		ProfessionalTitle: d.ProfessionalTitle,
		Website:           d.Website,
		SocialLinks: domain.SocialLinks{
			Instagram: d.SocialLinks.Instagram,
			Twitter:   d.SocialLinks.Twitter,
			Facebook:  d.SocialLinks.Facebook,
			LinkedIn:  d.SocialLinks.LinkedIn,
		},
		Categories:   d.Categories,
		SavedArtists: saved,
		CreatedAt:    d.CreatedAt.UTC(),
		LastLogin:    d.LastLogin.UTC(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		DisplayName:  user.DisplayName,
		CreatedAt:    user.CreatedAt,
		LastLogin:    user.LastLogin,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier reads the same as a missing record.
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []*domain.User{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return decodeUsers(ctx, cur)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	set := bson.M{}
	if update.DisplayName != nil {
		set["display_name"] = *update.DisplayName
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.ProfessionalTitle != nil {
		set["professional_title"] = *update.ProfessionalTitle
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}
	if update.SocialLinks != nil {
		set["social_links"] = socialLinksDoc{
			Instagram: update.SocialLinks.Instagram,
			Twitter:   update.SocialLinks.Twitter,
			Facebook:  update.SocialLinks.Facebook,
			LinkedIn:  update.SocialLinks.LinkedIn,
		}
	}
	if update.Categories != nil {
		set["categories"] = update.Categories
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	return r.findAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *UserRepository) SetProfileImage(ctx context.Context, id, filename string) (*domain.User, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"profile_image": filename}})
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"last_login": at}})
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *UserRepository) ListArtists(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"role": domain.RoleArtist}, opts)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return decodeUsers(ctx, cur)
}

func (r *UserRepository) AddSavedArtist(ctx context.Context, userID, artistID string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	artistOID, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$addToSet": bson.M{"saved_artists": artistOID}})
	if err != nil {
		return nil, fmt.Errorf("save artist: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	if res.ModifiedCount == 0 {
		return nil, domain.ErrArtistAlreadySaved
	}

	return r.savedArtists(ctx, oid)
}

func (r *UserRepository) RemoveSavedArtist(ctx context.Context, userID, artistID string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// $pull is a no-op when the artist is not in the list; unsave is idempotent.
	if artistOID, err := primitive.ObjectIDFromHex(artistID); err == nil {
		res, err := r.col.UpdateByID(ctx, oid, bson.M{"$pull": bson.M{"saved_artists": artistOID}})
		if err != nil {
			return nil, fmt.Errorf("unsave artist: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrUserNotFound
		}
	}

	return r.savedArtists(ctx, oid)
}

// EnsureIndexes creates the unique email index duplicate detection relies on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) findAndUpdate(ctx context.Context, id string, update bson.M) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) savedArtists(ctx context.Context, oid primitive.ObjectID) ([]string, error) {
	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("read saved artists: %w", err)
	}
	return doc.toDomain().SavedArtists, nil
}

func decodeUsers(ctx context.Context, cur *mongo.Cursor) ([]*domain.User, error) {
	defer cur.Close(ctx)

	users := make([]*domain.User, 0)
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
