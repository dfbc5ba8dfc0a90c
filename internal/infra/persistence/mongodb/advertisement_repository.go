package mongodb

import (
	"context"
	"time"

	"medistore/internal/domain/entity"
	"medistore/internal/domain/repository"
	"medistore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// advertisementRepository implements the repository.AdvertisementRepository interface.
type advertisementRepository struct {
	collection *mongo.Collection
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(db *mongo.Database) repository.AdvertisementRepository {
	return &advertisementRepository{
		collection: db.Collection(model.AdvertisementModel{}.CollectionName()),
	}
}

// CreateAdvertisement persists a new advertisement request.
func (repo *advertisementRepository) CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)

	result, err := repo.collection.InsertOne(ctx, adM)
	if err != nil {
		return errors.Wrap(err, "failed to insert advertisement")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		ad.ID = oid.Hex()
	}

	return nil
}

// FindAdvertisementByID retrieves an advertisement request by identifier.
func (repo *advertisementRepository) FindAdvertisementByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrAdvertisementNotFound
	}

	var adM model.AdvertisementModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&adM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement by ID")
	}

	return toAdvertisementDomain(&adM), nil
}

// FindAdvertisementsBySeller retrieves a seller's requests, newest first.
func (repo *advertisementRepository) FindAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error) {
	return repo.findAdvertisements(ctx, bson.M{"sellerEmail": sellerEmail})
}

// FindAllAdvertisements retrieves every request, newest first.
func (repo *advertisementRepository) FindAllAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	return repo.findAdvertisements(ctx, bson.M{})
}

// FindActiveAdvertisements retrieves live requests whose inclusive date
// window contains the given calendar date. Dates are stored as YYYY-MM-DD
// strings, so the range comparison is lexicographic.
func (repo *advertisementRepository) FindActiveAdvertisements(ctx context.Context, date string) ([]*entity.Advertisement, error) {
	return repo.findAdvertisements(ctx, bson.M{
		"status":    bson.M{"$in": []string{string(entity.AdStatusApproved), string(entity.AdStatusActive)}},
		"startDate": bson.M{"$lte": date},
		"endDate":   bson.M{"$gte": date},
	})
}

func (repo *advertisementRepository) findAdvertisements(ctx context.Context, filter bson.M) ([]*entity.Advertisement, error) {
	cursor, err := repo.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find advertisements")
	}

	var adModels []*model.AdvertisementModel
	if err := cursor.All(ctx, &adModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode advertisements")
	}

	ads := make([]*entity.Advertisement, 0, len(adModels))
	for _, adM := range adModels {
		ads = append(ads, toAdvertisementDomain(adM))
	}

	return ads, nil
}

// UpdateAdvertisementFields merges arbitrary fields into a request and stamps
// updatedAt. The identifier field has already been stripped by the caller.
func (repo *advertisementRepository) UpdateAdvertisementFields(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrAdvertisementNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "failed to update advertisement")
	}

	if result.MatchedCount == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// UpdateAdvertisementStatus sets status, admin note and review timestamps.
func (repo *advertisementRepository) UpdateAdvertisementStatus(ctx context.Context, id string, status entity.AdvertisementStatus, adminNote string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrAdvertisementNotFound
	}

	now := time.Now().UTC()
	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"status":     string(status),
			"adminNote":  adminNote,
			"reviewedAt": now,
			"updatedAt":  now,
		}})
	if err != nil {
		return errors.Wrap(err, "failed to update advertisement status")
	}

	if result.MatchedCount == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// DeleteAdvertisement removes a request by identifier.
func (repo *advertisementRepository) DeleteAdvertisement(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrAdvertisementNotFound
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete advertisement")
	}

	if result.DeletedCount == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

func toAdvertisementDomain(data *model.AdvertisementModel) *entity.Advertisement {
	return &entity.Advertisement{
		ID:          data.ID.Hex(),
		MedicineID:  data.MedicineID,
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		SellerEmail: data.SellerEmail,
		Status:      entity.AdvertisementStatus(data.Status),
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Clicks:      data.Clicks,
		Impressions: data.Impressions,
		Conversions: data.Conversions,
		Cost:        data.Cost,
		AdminNote:   data.AdminNote,
		CreatedAt:   data.CreatedAt,
		ReviewedAt:  data.ReviewedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAdvertisementDomain(data *entity.Advertisement) *model.AdvertisementModel {
	return &model.AdvertisementModel{
		MedicineID:  data.MedicineID,
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		SellerEmail: data.SellerEmail,
		Status:      string(data.Status),
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Clicks:      data.Clicks,
		Impressions: data.Impressions,
		Conversions: data.Conversions,
		Cost:        data.Cost,
		AdminNote:   data.AdminNote,
		CreatedAt:   data.CreatedAt,
		ReviewedAt:  data.ReviewedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
