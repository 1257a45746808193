package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/storage"
	"github.com/ferdian3456/postapi/internal/util"
)

var errStoreDown = errors.New("store is down")

type memoryPostStore struct {
	mu        sync.Mutex
	posts     map[int64]model.Post
	nextId    int64
	failWrite bool
}

func newMemoryPostStore() *memoryPostStore {
	return &memoryPostStore{posts: make(map[int64]model.Post), nextId: 1}
}

func (store *memoryPostStore) notFound() error {
	return &model.ValidationError{Code: constant.ERR_NOT_FOUND_ERROR, Message: constant.ERR_POST_NOT_FOUND_MESSAGE, Param: "id"}
}

func (store *memoryPostStore) FindAll(ctx context.Context) ([]model.Post, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	posts := []model.Post{}
	for id := int64(1); id < store.nextId; id++ {
		if post, ok := store.posts[id]; ok {
			posts = append(posts, post)
		}
	}

	return posts, nil
}

func (store *memoryPostStore) FindById(ctx context.Context, id int64) (model.Post, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	post, ok := store.posts[id]
	if !ok {
		return model.Post{}, store.notFound()
	}

	return post, nil
}

func (store *memoryPostStore) Insert(ctx context.Context, post *model.Post) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failWrite {
		return errStoreDown
	}

	now := time.Now().UTC()
	post.Id = store.nextId
	post.CreatedAt = now
	post.UpdatedAt = now
	store.posts[post.Id] = *post
	store.nextId++

	return nil
}

func (store *memoryPostStore) Update(ctx context.Context, post *model.Post) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failWrite {
		return errStoreDown
	}

	if _, ok := store.posts[post.Id]; !ok {
		return store.notFound()
	}

	post.UpdatedAt = time.Now().UTC()
	store.posts[post.Id] = *post

	return nil
}

func (store *memoryPostStore) Delete(ctx context.Context, id int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failWrite {
		return errStoreDown
	}

	if _, ok := store.posts[id]; !ok {
		return store.notFound()
	}

	delete(store.posts, id)

	return nil
}

type memoryDisk struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	failStore    bool
	failDelete   bool
}

func newMemoryDisk() *memoryDisk {
	return &memoryDisk{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (disk *memoryDisk) Store(ctx context.Context, dir string, name string, reader io.Reader, size int64, contentType string) (string, error) {
	if disk.failStore {
		return "", errStoreDown
	}

	key, err := storage.JoinKey(dir, name)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	disk.mu.Lock()
	defer disk.mu.Unlock()
	disk.objects[key] = data
	disk.contentTypes[key] = contentType

	return key, nil
}

func (disk *memoryDisk) Exists(ctx context.Context, key string) (bool, error) {
	disk.mu.Lock()
	defer disk.mu.Unlock()

	_, ok := disk.objects[key]
	return ok, nil
}

func (disk *memoryDisk) Delete(ctx context.Context, key string) error {
	if disk.failDelete {
		return errStoreDown
	}

	disk.mu.Lock()
	defer disk.mu.Unlock()
	delete(disk.objects, key)
	delete(disk.contentTypes, key)

	return nil
}

func (disk *memoryDisk) Open(ctx context.Context, key string) (*storage.Object, error) {
	disk.mu.Lock()
	defer disk.mu.Unlock()

	data, ok := disk.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}

	return &storage.Object{Body: io.NopCloser(bytes.NewReader(data)), Size: int64(len(data)), ContentType: "application/octet-stream"}, nil
}

func (disk *memoryDisk) keys() []string {
	disk.mu.Lock()
	defer disk.mu.Unlock()

	keys := make([]string, 0, len(disk.objects))
	for key := range disk.objects {
		keys = append(keys, key)
	}

	return keys
}

type memoryUserStore struct {
	mu     sync.Mutex
	users  map[int64]model.User
	nextId int64
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[int64]model.User), nextId: 1}
}

func (store *memoryUserStore) Insert(ctx context.Context, user *model.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now().UTC()
	user.Id = store.nextId
	user.CreatedAt = now
	user.UpdatedAt = now
	store.users[user.Id] = *user
	store.nextId++

	return nil
}

func (store *memoryUserStore) CheckEmailUnique(ctx context.Context, email string) (int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, user := range store.users {
		if user.Email == email {
			return 1, nil
		}
	}

	return 0, nil
}

func (store *memoryUserStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, user := range store.users {
		if user.Email == email {
			return user, nil
		}
	}

	return model.User{}, &model.ValidationError{Code: constant.ERR_NOT_FOUND_ERROR, Message: constant.ERR_USER_NOT_FOUND_MESSAGE}
}

func (store *memoryUserStore) FindById(ctx context.Context, id int64) (model.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, ok := store.users[id]
	if !ok {
		return model.User{}, &model.ValidationError{Code: constant.ERR_NOT_FOUND_ERROR, Message: constant.ERR_USER_NOT_FOUND_MESSAGE}
	}

	return user, nil
}

type memoryTokenStore struct {
	mu     sync.Mutex
	hashes map[int64]string
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{hashes: make(map[int64]string)}
}

func (store *memoryTokenStore) SetAccessToken(ctx context.Context, userId int64, accessToken string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.hashes[userId] = util.HashToken(accessToken)
	return nil
}

func (store *memoryTokenStore) GetAccessToken(ctx context.Context, userId int64) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	hash, ok := store.hashes[userId]
	if !ok {
		return "", &model.ValidationError{Code: constant.ERR_UNATHORIZED_ERROR, Message: "Authorization token not found or expired"}
	}

	return hash, nil
}

func (store *memoryTokenStore) RemoveAccessToken(ctx context.Context, userId int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.hashes, userId)
	return nil
}
