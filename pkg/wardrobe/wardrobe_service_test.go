package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"testing"
	"time"

	"rhea-backend/domain"
	"rhea-backend/entities"
	"rhea-backend/internal/utils"
	"rhea-backend/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeWardrobeRepository struct {
	mu        sync.Mutex
	items     []*entities.WardrobeItem
	createErr error
	clock     time.Time
}

func (f *fakeWardrobeRepository) CountByUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, it := range f.items {
		if it.UserID.String() == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeWardrobeRepository) CreateItem(_ context.Context, item *entities.WardrobeItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.clock = f.clock.Add(time.Second)
	item.ID = uuid.New()
	item.CreatedAt = f.clock
	f.items = append(f.items, item)
	return nil
}

func (f *fakeWardrobeRepository) GetItems(_ context.Context, userID string, category string) ([]*entities.WardrobeItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entities.WardrobeItem
	for _, it := range f.items {
		if it.UserID.String() == userID && (category == "" || it.ItemCategory == category) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeWardrobeRepository) GetItemByID(_ context.Context, id string) (*entities.WardrobeItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID.String() == id {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWardrobeRepository) DeleteItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.items {
		if it.ID.String() == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

const linkPrefix = "https://cdn.test/wardrobe_assets/"

func (s *fakeStorage) PutObject(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return "", s.putErr
	}
	s.objects[key] = data
	return linkPrefix + key, nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) GetObjectKeyFromLink(link string) string {
	if len(link) <= len(linkPrefix) || link[:len(linkPrefix)] != linkPrefix {
		return ""
	}
	return link[len(linkPrefix):]
}

func newTestService(repo *fakeWardrobeRepository, store *fakeStorage) WardrobeService {
	return NewWardrobeService(repo, store, events.NewPublisher(""))
}

func shirt() *utils.Upload {
	return &utils.Upload{Filename: "shirt.png", ContentType: "image/png", Data: []byte("pixels")}
}

func TestUploadItem(t *testing.T) {
	repo := &fakeWardrobeRepository{}
	store := newFakeStorage()
	svc := newTestService(repo, store)
	userID := uuid.NewString()

	res, err := svc.UploadItem(context.Background(), userID, domain.UploadWardrobeItemRequest{ItemName: "Linen shirt"}, shirt())
	require.NoError(t, err)

	assert.Equal(t, domain.DEFAULT_ITEM_CATEGORY, res.ItemCategory)
	assert.NotEmpty(t, res.ItemID)
	require.Len(t, repo.items, 1)
	assert.Equal(t, res.ItemURL, repo.items[0].ItemURL)
	require.NotNil(t, repo.items[0].ItemName)
	assert.Equal(t, "Linen shirt", *repo.items[0].ItemName)
	assert.Nil(t, repo.items[0].ItemDescription)
	assert.JSONEq(t, `{"original_filename":"shirt.png","file_size":6,"content_type":"image/png"}`, string(repo.items[0].Metadata))

	key := store.GetObjectKeyFromLink(res.ItemURL)
	assert.Regexp(t, regexp.MustCompile("^"+userID+`/\d{13}-[0-9a-f]{8}\.png$`), key)
	assert.Equal(t, []byte("pixels"), store.objects[key])
}

func TestUploadItemQuota(t *testing.T) {
	repo := &fakeWardrobeRepository{}
	store := newFakeStorage()
	svc := newTestService(repo, store)
	userID := uuid.NewString()
	ctx := context.Background()

	for i := 0; i < domain.FREE_TIER_LIMIT; i++ {
		_, err := svc.UploadItem(ctx, userID, domain.UploadWardrobeItemRequest{ItemName: fmt.Sprintf("item %d", i)}, shirt())
		require.NoError(t, err)
	}
	assert.Equal(t, 15, store.puts)

	_, err := svc.UploadItem(ctx, userID, domain.UploadWardrobeItemRequest{}, shirt())
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Contains(t, err.Error(), "15-item limit")
	assert.Equal(t, 15, store.puts)
	assert.Len(t, repo.items, 15)

	// Another user is unaffected.
	_, err = svc.UploadItem(ctx, uuid.NewString(), domain.UploadWardrobeItemRequest{}, shirt())
	assert.NoError(t, err)
}

func TestUploadItemValidation(t *testing.T) {
	tests := []struct {
		name   string
		upload *utils.Upload
		reason string
	}{
		{"missing file", nil, "No filename provided"},
		{"empty", &utils.Upload{Filename: "a.png", ContentType: "image/png"}, "Empty file uploaded"},
		{"pdf", &utils.Upload{Filename: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}, "Invalid image file format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeWardrobeRepository{}
			store := newFakeStorage()

			_, err := newTestService(repo, store).UploadItem(context.Background(), uuid.NewString(), domain.UploadWardrobeItemRequest{}, tt.upload)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.reason)
			assert.Equal(t, 0, store.puts)
			assert.Empty(t, repo.items)
		})
	}
}

func TestUploadItemStorageFailure(t *testing.T) {
	repo := &fakeWardrobeRepository{}
	store := newFakeStorage()
	store.putErr = errors.New("bucket not found")

	_, err := newTestService(repo, store).UploadItem(context.Background(), uuid.NewString(), domain.UploadWardrobeItemRequest{}, shirt())
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Empty(t, repo.items)
}

func TestUploadItemInsertFailureRemovesObject(t *testing.T) {
	repo := &fakeWardrobeRepository{createErr: errors.New("insert failed")}
	store := newFakeStorage()

	_, err := newTestService(repo, store).UploadItem(context.Background(), uuid.NewString(), domain.UploadWardrobeItemRequest{}, shirt())
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Equal(t, 1, store.puts)
	assert.Empty(t, store.objects)
}

func TestGetItemsNewestFirstWithCategory(t *testing.T) {
	repo := &fakeWardrobeRepository{}
	svc := newTestService(repo, newFakeStorage())
	userID := uuid.NewString()
	ctx := context.Background()

	for _, c := range []string{"tops", "shoes", "tops"} {
		_, err := svc.UploadItem(ctx, userID, domain.UploadWardrobeItemRequest{ItemCategory: c}, shirt())
		require.NoError(t, err)
	}

	all, err := svc.GetItems(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)
	assert.True(t, all.Items[0].CreatedAt.After(all.Items[2].CreatedAt))
	assert.Equal(t, "shirt.png", all.Items[0].Metadata.OriginalFilename)

	tops, err := svc.GetItems(ctx, userID, "tops")
	require.NoError(t, err)
	assert.Equal(t, 2, tops.Count)

	none, err := svc.GetItems(ctx, uuid.NewString(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, none.Count)
	assert.NotNil(t, none.Items)
}

func TestDeleteItem(t *testing.T) {
	repo := &fakeWardrobeRepository{}
	store := newFakeStorage()
	svc := newTestService(repo, store)
	owner := uuid.NewString()
	ctx := context.Background()

	res, err := svc.UploadItem(ctx, owner, domain.UploadWardrobeItemRequest{}, shirt())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteItem(ctx, uuid.NewString(), res.ItemID), domain.ErrUnauthorizedAccess)
	assert.ErrorIs(t, svc.DeleteItem(ctx, owner, uuid.NewString()), domain.ErrWardrobeItemNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, owner, "not-a-uuid"), domain.ErrWardrobeItemNotFound)

	require.NoError(t, svc.DeleteItem(ctx, owner, res.ItemID))
	assert.Empty(t, repo.items)
	assert.Empty(t, store.objects)
}

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	key := ObjectKey("u1", at, "webp")
	assert.Regexp(t, `^u1/1700000000123-[0-9a-f]{8}\.webp$`, key)
	assert.NotEqual(t, key, ObjectKey("u1", at, "webp"))
}
