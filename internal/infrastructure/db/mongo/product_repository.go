package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

const collectionProducts = "products"

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

// Insert persists a new product. A duplicate sku raises domain.ErrSKUExists
// via the unique index.
func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrSKUExists
		}
		return "", fmt.Errorf("insert product: %w", err)
	}
	return p.ID, nil
}

// InsertBatch writes all products inside one transaction: the commit is
// all-or-nothing. Ids are assigned to the given slice before the write so the
// caller can return the created records. A duplicate sku anywhere in the
// batch, including two batch rows sharing a sku, aborts the whole batch with
// domain.ErrSKUExists.
func (r *ProductRepository) InsertBatch(ctx context.Context, ps []domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(ps))
	for i := range ps {
		ps[i].ID = primitive.NewObjectID().Hex()
		docs[i] = ps[i]
	}

	session, err := r.col.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("insert batch: start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := r.col.InsertMany(sc, docs, options.InsertMany().SetOrdered(true))
		return nil, err
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSKUExists
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, bson.M{"_id": id})
}

func (r *ProductRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	return r.exists(ctx, bson.M{"sku": sku})
}

func (r *ProductRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, bson.M{"name": name})
}

func (r *ProductRepository) AnyInContainer(ctx context.Context, containerID string) (bool, error) {
	return r.exists(ctx, bson.M{"container_id": containerID})
}

func (r *ProductRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("find product: %w", err)
	}
	return true, nil
}

// FindExistingSKUs returns the subset of skus already present in the store.
func (r *ProductRepository) FindExistingSKUs(ctx context.Context, skus []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"sku": bson.M{"$in": skus}},
		options.Find().SetProjection(bson.M{"sku": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("find existing skus: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		SKU string `bson:"sku"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("find existing skus: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.SKU)
	}
	return out, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, limit int64) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}
