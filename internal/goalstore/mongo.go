package goalstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tablero/internal/model"
)

const mongoCollection = "metas"

// MongoStore MongoDB 存储，metas 集合内 _id = 星期名
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoGoalsDoc 集合文档结构
type mongoGoalsDoc struct {
	ID    string                     `bson:"_id"`
	Goals map[string]model.WeekGoals `bson:"goals"`
}

// NewMongoStore 连接 MongoDB 并绑定 metas 集合
func NewMongoStore(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(mongoCollection),
	}, nil
}

// WeekGoals 读取整周目标文档
func (s *MongoStore) WeekGoals(ctx context.Context, weekday string) (model.GoalMatrix, error) {
	var doc mongoGoalsDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": weekday}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return model.GoalMatrix{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}

	goals := make(model.GoalMatrix, len(doc.Goals))
	for k, v := range doc.Goals {
		goals[k] = v
	}
	return goals, nil
}

// SaveWeekGoals 整体替换文档（upsert）
func (s *MongoStore) SaveWeekGoals(ctx context.Context, weekday string, goals model.GoalMatrix) error {
	doc := mongoGoalsDoc{ID: weekday, Goals: goals}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": weekday}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}

// Ping 连通性检查
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close 断开连接
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
