package mongodb

import (
	"context"

	"medistore/internal/domain/entity"
	"medistore/internal/domain/repository"
	"medistore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		collection: db.Collection(model.OrderModel{}.CollectionName()),
	}
}

// CreateOrder persists a confirmed order and fills in its identifier.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result, err := repo.collection.InsertOne(ctx, orderM)
	if err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}

	return nil
}

// FindOrdersByCustomer retrieves all orders for a customer email, newest first.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, email string) ([]*entity.Order, error) {
	return repo.findOrders(ctx, bson.M{"customerInfo.email": email})
}

// FindAllOrders retrieves every order, newest first.
func (repo *orderRepository) FindAllOrders(ctx context.Context) ([]*entity.Order, error) {
	return repo.findOrders(ctx, bson.M{})
}

func (repo *orderRepository) findOrders(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	cursor, err := repo.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	var orderModels []*model.OrderModel
	if err := cursor.All(ctx, &orderModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.LineItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.LineItem{
			MedicineID: item.MedicineID,
			ItemID:     item.ItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	return &entity.Order{
		ID:              data.ID.Hex(),
		PaymentIntentID: data.PaymentIntentID,
		CustomerInfo: entity.CustomerInfo{
			Email:    data.CustomerInfo.Email,
			FullName: data.CustomerInfo.FullName,
			Phone:    data.CustomerInfo.Phone,
			Address:  data.CustomerInfo.Address,
		},
		Items:         items,
		OrderTotal:    data.OrderTotal,
		PaymentStatus: data.PaymentStatus,
		OrderStatus:   data.OrderStatus,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.LineItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.LineItemModel{
			MedicineID: item.MedicineID,
			ItemID:     item.ItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	return &model.OrderModel{
		PaymentIntentID: data.PaymentIntentID,
		CustomerInfo: model.CustomerInfoModel{
			Email:    data.CustomerInfo.Email,
			FullName: data.CustomerInfo.FullName,
			Phone:    data.CustomerInfo.Phone,
			Address:  data.CustomerInfo.Address,
		},
		Items:         items,
		OrderTotal:    data.OrderTotal,
		PaymentStatus: data.PaymentStatus,
		OrderStatus:   data.OrderStatus,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
