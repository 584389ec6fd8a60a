package repository

import (
	"context"
	"errors"

	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ownerLookup resolves author ids to owner summaries with one query
type ownerLookup struct {
	users *mongo.Collection
}

func (l ownerLookup) populate(ctx context.Context, ids []string) (map[string]*models.OwnerSummary, error) {
	owners := make(map[string]*models.OwnerSummary, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "email": 1})
	cursor, err := l.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	var users []*models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		owners[u.ID] = u.Summary()
	}
	return owners, nil
}

func newestFirst(page models.Page) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))
}

// mongoUserRepo is the MongoDB implementation of UserRepository
type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new user repository over the users collection
func NewMongoUserRepo(m *database.Mongo) UserRepository {
	return &mongoUserRepo{coll: m.DB.Collection(database.UsersCollection)}
}

func (r *mongoUserRepo) Create(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) Update(ctx context.Context, user *models.User) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"name":      user.Name,
		"bio":       user.Bio,
		"updatedAt": user.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoUserRepo) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return int(n), err
}

// mongoPostRepo is the MongoDB implementation of PostRepository
type mongoPostRepo struct {
	coll   *mongo.Collection
	owners ownerLookup
}

// NewMongoPostRepo creates a new post repository over the posts collection
func NewMongoPostRepo(m *database.Mongo) PostRepository {
	return &mongoPostRepo{
		coll:   m.DB.Collection(database.PostsCollection),
		owners: ownerLookup{users: m.DB.Collection(database.UsersCollection)},
	}
}

func (r *mongoPostRepo) Create(ctx context.Context, post *models.Post) error {
	doc := *post
	doc.Categories = nonNilStrings(doc.Categories)
	doc.Tags = nonNilStrings(doc.Tags)
	_, err := r.coll.InsertOne(ctx, &doc)
	return err
}

func (r *mongoPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachOwners(ctx, []*models.Post{&post}); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *mongoPostRepo) Update(ctx context.Context, post *models.Post) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$set": bson.M{
		"title":       post.Title,
		"content":     post.Content,
		"categories":  nonNilStrings(post.Categories),
		"tags":        nonNilStrings(post.Tags),
		"isPublished": post.IsPublished,
		"updatedAt":   post.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPostRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoPostRepo) List(ctx context.Context, filter models.PostFilter, page models.Page) ([]*models.Post, int, error) {
	query := bson.M{}
	if filter.PublishedOnly {
		query["isPublished"] = true
	}
	if filter.AuthorID != "" {
		query["author"] = filter.AuthorID
	}
	if filter.Category != "" {
		query["categories"] = bson.M{"$in": []string{filter.Category}}
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	cursor, err := r.coll.Find(ctx, query, newestFirst(page))
	if err != nil {
		return nil, 0, err
	}
	posts := []*models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachOwners(ctx, posts); err != nil {
		return nil, 0, err
	}
	return posts, int(total), nil
}

func (r *mongoPostRepo) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (r *mongoPostRepo) attachOwners(ctx context.Context, posts []*models.Post) error {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}
	owners, err := r.owners.populate(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		p.Author = owners[p.AuthorID]
		p.Categories = nonNilStrings(p.Categories)
		p.Tags = nonNilStrings(p.Tags)
	}
	return nil
}

// mongoCommentRepo is the MongoDB implementation of CommentRepository
type mongoCommentRepo struct {
	coll   *mongo.Collection
	owners ownerLookup
}

// NewMongoCommentRepo creates a new comment repository over the comments collection
func NewMongoCommentRepo(m *database.Mongo) CommentRepository {
	return &mongoCommentRepo{
		coll:   m.DB.Collection(database.CommentsCollection),
		owners: ownerLookup{users: m.DB.Collection(database.UsersCollection)},
	}
}

func (r *mongoCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	_, err := r.coll.InsertOne(ctx, comment)
	return err
}

func (r *mongoCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachOwners(ctx, []*models.Comment{&comment}); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *mongoCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": comment.ID}, bson.M{"$set": bson.M{
		"content":   comment.Content,
		"updatedAt": comment.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCommentRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoCommentRepo) List(ctx context.Context, filter models.CommentFilter, page models.Page) ([]*models.Comment, int, error) {
	query := bson.M{}
	if filter.PostID != "" {
		query["post"] = filter.PostID
	}
	if filter.ApprovedOnly {
		query["isApproved"] = true
	}

	cursor, err := r.coll.Find(ctx, query, newestFirst(page))
	if err != nil {
		return nil, 0, err
	}
	comments := []*models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachOwners(ctx, comments); err != nil {
		return nil, 0, err
	}
	return comments, int(total), nil
}

func (r *mongoCommentRepo) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (r *mongoCommentRepo) attachOwners(ctx context.Context, comments []*models.Comment) error {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	owners, err := r.owners.populate(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range comments {
		c.Author = owners[c.AuthorID]
	}
	return nil
}

// mongoSessionRepo is the MongoDB implementation of SessionRepository.
// Expired documents are also reaped by the TTL index on expiresAt.
type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new session repository over the sessions collection
func NewMongoSessionRepo(m *database.Mongo) SessionRepository {
	return &mongoSessionRepo{coll: m.DB.Collection(database.SessionsCollection)}
}

func (r *mongoSessionRepo) Create(ctx context.Context, session *models.Session) error {
	_, err := r.coll.InsertOne(ctx, session)
	return err
}

func (r *mongoSessionRepo) Get(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"_id": token}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *mongoSessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": token})
	return err
}
