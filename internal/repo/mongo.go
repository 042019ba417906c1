package repo

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

// MongoDriver is the MongoDB implementation of Driver. Reads use the primary,
// which gives read-your-writes for operations issued through one client.
type MongoDriver struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to uri, selects database and verifies the primary is
// reachable before returning. Commands are traced through otelmongo.
func OpenMongo(ctx context.Context, uri, database string) (*MongoDriver, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetAppName("go-memo-backend").
		SetReadPreference(readpref.Primary()).
		SetMonitor(otelmongo.NewMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	d := &MongoDriver{client: client, db: client.Database(database)}
	if err := d.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}
	return d, nil
}

// InsertOne inserts doc; documents without an _id get one from the driver.
func (d *MongoDriver) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := d.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// Find returns every document of collection.
func (d *MongoDriver) Find(ctx context.Context, collection string) ([]bson.Raw, error) {
	cur, err := d.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.Raw{}
	for cur.Next(ctx) {
		// cur.Current is reused by the next call to Next.
		out = append(out, append(bson.Raw(nil), cur.Current...))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne returns the document with id, or nil.
func (d *MongoDriver) FindOne(ctx context.Context, collection string, id primitive.ObjectID) (bson.Raw, error) {
	raw, err := d.db.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return raw, err
}

// FindOneAndSet applies $set and returns the document after the update.
func (d *MongoDriver) FindOneAndSet(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (bson.Raw, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	raw, err := d.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).
		Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return raw, err
}

// DeleteOne removes the document with id.
func (d *MongoDriver) DeleteOne(ctx context.Context, collection string, id primitive.ObjectID) (bool, error) {
	res, err := d.db.Collection(collection).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Ping checks that the primary is reachable.
func (d *MongoDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *MongoDriver) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
