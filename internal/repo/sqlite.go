package repo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// SQLiteDriver is an embedded Driver that stores each document as a BSON blob
// keyed by (collection, hex id). It is intended for local development, single
// node deployments and tests.
type SQLiteDriver struct {
	DB *gorm.DB
}

// NewSQLiteDriver migrates db and returns a driver over it.
func NewSQLiteDriver(db *gorm.DB) (*SQLiteDriver, error) {
	if err := AutoMigrate(db); err != nil {
		return nil, errors.Wrap(err, "migrate documents")
	}
	return &SQLiteDriver{DB: db}, nil
}

// InsertOne assigns a new ObjectID (replacing any _id in doc) and stores doc.
func (d *SQLiteDriver) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	body, err := bson.Marshal(withID(fields, id))
	if err != nil {
		return primitive.NilObjectID, err
	}
	row := &document{Collection: collection, ID: id.Hex(), Body: body}
	if err := d.DB.WithContext(ctx).Create(row).Error; err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Find returns every document of collection ordered by id, which follows
// insertion order for ObjectIDs generated by one process.
func (d *SQLiteDriver) Find(ctx context.Context, collection string) ([]bson.Raw, error) {
	var rows []document
	err := d.DB.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]bson.Raw, 0, len(rows))
	for _, r := range rows {
		out = append(out, bson.Raw(r.Body))
	}
	return out, nil
}

// FindOne returns the document with id, or nil.
func (d *SQLiteDriver) FindOne(ctx context.Context, collection string, id primitive.ObjectID) (bson.Raw, error) {
	row, err := findRow(d.DB.WithContext(ctx), collection, id)
	if err != nil || row == nil {
		return nil, err
	}
	return bson.Raw(row.Body), nil
}

// FindOneAndSet reads, patches and rewrites the document inside one
// transaction and returns the rewritten body.
func (d *SQLiteDriver) FindOneAndSet(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (bson.Raw, error) {
	var out bson.Raw
	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := findRow(tx, collection, id)
		if err != nil || row == nil {
			return err
		}
		var fields bson.D
		if err := bson.Unmarshal(row.Body, &fields); err != nil {
			return err
		}
		for k, v := range set {
			fields = setField(fields, k, v)
		}
		body, err := bson.Marshal(fields)
		if err != nil {
			return err
		}
		res := tx.Model(&document{}).
			Where("collection = ? AND id = ?", collection, row.ID).
			Update("body", body)
		if res.Error != nil {
			return res.Error
		}
		out = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOne removes the document with id.
func (d *SQLiteDriver) DeleteOne(ctx context.Context, collection string, id primitive.ObjectID) (bool, error) {
	res := d.DB.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id.Hex()).
		Delete(&document{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Ping checks the database handle.
func (d *SQLiteDriver) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database handle.
func (d *SQLiteDriver) Close(context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func findRow(db *gorm.DB, collection string, id primitive.ObjectID) (*document, error) {
	var row document
	err := db.Where("collection = ? AND id = ?", collection, id.Hex()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// withID returns fields with _id set to id as the first element.
func withID(fields bson.D, id primitive.ObjectID) bson.D {
	out := make(bson.D, 0, len(fields)+1)
	out = append(out, bson.E{Key: "_id", Value: id})
	for _, e := range fields {
		if e.Key != "_id" {
			out = append(out, e)
		}
	}
	return out
}

// setField replaces the value of key in fields, appending it when absent.
func setField(fields bson.D, key string, value any) bson.D {
	for i := range fields {
		if fields[i].Key == key {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, bson.E{Key: key, Value: value})
}
