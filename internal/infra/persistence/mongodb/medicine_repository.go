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

// medicineRepository implements the repository.MedicineRepository interface.
type medicineRepository struct {
	collection *mongo.Collection
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *mongo.Database) repository.MedicineRepository {
	return &medicineRepository{
		collection: db.Collection(model.MedicineModel{}.CollectionName()),
	}
}

// CreateMedicine persists a new medicine listing.
func (repo *medicineRepository) CreateMedicine(ctx context.Context, medicine *entity.Medicine) error {
	medicineM := fromMedicineDomain(medicine)

	result, err := repo.collection.InsertOne(ctx, medicineM)
	if err != nil {
		return errors.Wrap(err, "failed to insert medicine")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		medicine.ID = oid.Hex()
	}

	return nil
}

// FindMedicineByID retrieves a medicine by its identifier.
func (repo *medicineRepository) FindMedicineByID(ctx context.Context, id string) (*entity.Medicine, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrMedicineNotFound
	}

	var medicineM model.MedicineModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&medicineM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by ID")
	}

	return toMedicineDomain(&medicineM), nil
}

// FindAllMedicines retrieves every medicine listing.
func (repo *medicineRepository) FindAllMedicines(ctx context.Context) ([]*entity.Medicine, error) {
	return repo.findMedicines(ctx, bson.M{})
}

// FindMedicinesBySeller retrieves all medicines listed by a seller.
func (repo *medicineRepository) FindMedicinesBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error) {
	return repo.findMedicines(ctx, bson.M{"sellerEmail": sellerEmail})
}

// FindBannerMedicines retrieves medicines flagged for the banner slider.
func (repo *medicineRepository) FindBannerMedicines(ctx context.Context) ([]*entity.Medicine, error) {
	return repo.findMedicines(ctx, bson.M{"banner": true})
}

func (repo *medicineRepository) findMedicines(ctx context.Context, filter bson.M) ([]*entity.Medicine, error) {
	cursor, err := repo.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find medicines")
	}

	var medicineModels []*model.MedicineModel
	if err := cursor.All(ctx, &medicineModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode medicines")
	}

	medicines := make([]*entity.Medicine, 0, len(medicineModels))
	for _, medicineM := range medicineModels {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines, nil
}

// UpdateMedicine overwrites the mutable fields of an existing listing.
func (repo *medicineRepository) UpdateMedicine(ctx context.Context, medicine *entity.Medicine) error {
	oid, err := primitive.ObjectIDFromHex(medicine.ID)
	if err != nil {
		return repository.ErrMedicineNotFound
	}

	medicine.UpdatedAt = time.Now().UTC()

	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":          medicine.Name,
			"category":      medicine.Category,
			"pricePerUnit":  medicine.PricePerUnit,
			"discount":      medicine.Discount,
			"discountPrice": medicine.DiscountPrice,
			"stockQuantity": medicine.StockQuantity,
			"inStock":       medicine.InStock,
			"banner":        medicine.Banner,
			"rating":        medicine.Rating,
			"reviewCount":   medicine.ReviewCount,
			"updatedAt":     medicine.UpdatedAt,
		}})
	if err != nil {
		return errors.Wrap(err, "failed to update medicine")
	}

	if result.MatchedCount == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// DeleteMedicine removes a listing by its identifier.
func (repo *medicineRepository) DeleteMedicine(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrMedicineNotFound
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete medicine")
	}

	if result.DeletedCount == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// DecrementStock atomically decreases the stock quantity by the ordered
// amount and marks the medicine in stock.
func (repo *medicineRepository) DecrementStock(ctx context.Context, id string, quantity int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrMedicineNotFound
	}

	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$inc": bson.M{"stockQuantity": -quantity},
			"$set": bson.M{"inStock": true, "updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return errors.Wrap(err, "failed to decrement stock")
	}

	if result.MatchedCount == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// ClearStock forces stock quantity to zero and marks the medicine out of stock.
func (repo *medicineRepository) ClearStock(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrMedicineNotFound
	}

	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"stockQuantity": int64(0),
			"inStock":       false,
			"updatedAt":     time.Now().UTC(),
		}})
	if err != nil {
		return errors.Wrap(err, "failed to clear stock")
	}

	if result.MatchedCount == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	return &entity.Medicine{
		ID:            data.ID.Hex(),
		Name:          data.Name,
		Category:      data.Category,
		PricePerUnit:  data.PricePerUnit,
		Discount:      data.Discount,
		DiscountPrice: data.DiscountPrice,
		StockQuantity: data.StockQuantity,
		InStock:       data.InStock,
		SellerEmail:   data.SellerEmail,
		Banner:        data.Banner,
		Rating:        data.Rating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	return &model.MedicineModel{
		Name:          data.Name,
		Category:      data.Category,
		PricePerUnit:  data.PricePerUnit,
		Discount:      data.Discount,
		DiscountPrice: data.DiscountPrice,
		StockQuantity: data.StockQuantity,
		InStock:       data.InStock,
		SellerEmail:   data.SellerEmail,
		Banner:        data.Banner,
		Rating:        data.Rating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
