package mongodb

import (
	"context"
	"time"

	"jobtrack/internal/domain/entity"
	"jobtrack/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// now returns the current time at the precision MongoDB stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// pageResult is the shape of a single $facet pagination result.
type pageResult[M any] struct {
	Metadata []struct {
		TotalDocs int64 `bson:"totalDocs"`
	} `bson:"metadata"`
	Docs []M `bson:"docs"`
}

func (r pageResult[M]) total() int64 {
	if len(r.Metadata) == 0 {
		return 0
	}

	return r.Metadata[0].TotalDocs
}

// pagePipeline filters, sorts and splits the result into a count and one window of projected documents.
func pagePipeline(match bson.M, sort bson.D, projection bson.M, page entity.PageRequest) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: sort}},
		{{Key: "$facet", Value: bson.M{
			"metadata": bson.A{
				bson.M{"$count": "totalDocs"},
			},
			"docs": bson.A{
				bson.M{"$skip": page.Skip()},
				bson.M{"$limit": page.Limit},
				bson.M{"$project": projection},
			},
		}}},
	}
}

// paginate runs pagePipeline and returns the decoded window and the total match count.
func paginate[M any](ctx context.Context, coll *mongo.Collection, match bson.M, sort bson.D, projection bson.M, page entity.PageRequest) ([]M, int64, error) {
	cursor, err := coll.Aggregate(ctx, pagePipeline(match, sort, projection, page))
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to aggregate %s", coll.Name())
	}
	defer cursor.Close(ctx)

	var results []pageResult[M]
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, errors.Wrapf(err, "failed to decode %s page", coll.Name())
	}
	if len(results) == 0 {
		return []M{}, 0, nil
	}

	docs := results[0].Docs
	if docs == nil {
		docs = []M{}
	}

	return docs, results[0].total(), nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, translateError(err, "failed to insert into "+coll.Name())
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return oid, nil
}

func findOneByID[M any](ctx context.Context, coll *mongo.Collection, id string) (*M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc M
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateError(err, "failed to find "+coll.Name()+" document")
	}

	return &doc, nil
}

// updateOneByID applies set plus a fresh updatedAt and returns the document after the update.
func updateOneByID[M any](ctx context.Context, coll *mongo.Collection, id string, set bson.D) (*M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set = append(set, bson.E{Key: "updatedAt", Value: now()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc M
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		return nil, translateError(err, "failed to update "+coll.Name()+" document")
	}

	return &doc, nil
}

// deleteOneByID removes the document and returns its last state.
func deleteOneByID[M any](ctx context.Context, coll *mongo.Collection, id string) (*M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc M
	if err := coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateError(err, "failed to delete "+coll.Name()+" document")
	}

	return &doc, nil
}

// setBuilder collects the $set fields of a patch, skipping nil values.
type setBuilder struct {
	fields bson.D
}

func setIfPresent[V any](b *setBuilder, key string, value *V) {
	if value == nil {
		return
	}

	b.fields = append(b.fields, bson.E{Key: key, Value: *value})
}

func (b *setBuilder) build() bson.D {
	if b.fields == nil {
		return bson.D{}
	}

	return b.fields
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}

	return id.Hex()
}

func ownerMatch(userID string) (bson.M, error) {
	oid, err := parseOwnerID(userID)
	if err != nil {
		return nil, err
	}

	return bson.M{"userId": oid}, nil
}
