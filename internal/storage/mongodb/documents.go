package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

type productDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Size      string             `bson:"size"`
	Price     int64              `bson:"price"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Size:      d.Size,
		Price:     d.Price,
		CreatedAt: d.CreatedAt,
	}
}

type orderItemDoc struct {
	ProductID string `bson:"product_id"`
	Quantity  int64  `bson:"quantity"`
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Items     []orderItemDoc     `bson:"items"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d orderDoc) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return domain.Order{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Items:     items,
		CreatedAt: d.CreatedAt,
	}
}
