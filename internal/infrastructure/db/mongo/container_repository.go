package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

const collectionContainers = "containers"

type ContainerRepository struct {
	col *mongo.Collection
}

func NewContainerRepository(db *mongo.Database) *ContainerRepository {
	return &ContainerRepository{col: db.Collection(collectionContainers)}
}

// Insert persists a new container. A duplicate container_code raises
// domain.ErrContainerCodeExists via the unique index.
func (r *ContainerRepository) Insert(ctx context.Context, c *domain.Container) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrContainerCodeExists
		}
		return "", fmt.Errorf("insert container: %w", err)
	}
	return c.ID, nil
}

func (r *ContainerRepository) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("find container: %w", err)
	}
	return true, nil
}

func (r *ContainerRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, bson.M{"container_code": code}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("find container code: %w", err)
	}
	return true, nil
}

func (r *ContainerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete container: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContainerNotFound
	}
	return nil
}

func (r *ContainerRepository) List(ctx context.Context) ([]domain.Container, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Container
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return out, nil
}
