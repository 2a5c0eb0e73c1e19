package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/strivehq/strive/internal/models"
)

const feedAnonymousAuthor = "Anonymous"

const feedTimestampLayout = "Jan 2, 2006 3:04 PM"

// FeedEntry is one fully rendered row of the dashboard feed.
type FeedEntry struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	PostedAt  string `json:"posted_at"`
	LikeCount int    `json:"like_count"`
}

// BuildFeedEntries is the render step: it maps an ordered post snapshot onto
// display rows, in the delivered order. It rebuilds from scratch each call, so
// rendering the same snapshot twice yields the same rows twice.
func BuildFeedEntries(posts []models.Post, location *time.Location) []FeedEntry {
	if location == nil {
		location = time.Local
	}

	entries := make([]FeedEntry, 0, len(posts))
	for _, post := range posts {
		author := strings.TrimSpace(post.Author)
		if author == "" {
			author = feedAnonymousAuthor
		}

		postedAt := ""
		if !post.CreatedAt.IsZero() {
			postedAt = post.CreatedAt.In(location).Format(feedTimestampLayout)
		}

		entries = append(entries, FeedEntry{
			Author:    author,
			Content:   post.Content,
			PostedAt:  postedAt,
			LikeCount: post.LikeCount(),
		})
	}
	return entries
}

type FeedPostRepository interface {
	ListNewestFirst() ([]models.Post, error)
	Create(post *models.Post) error
}

// FeedService owns the post collection view: the current ordered snapshot,
// and a standing subscription hub that redelivers the full snapshot after
// every change. Subscribers always receive complete snapshots, never diffs;
// a slow subscriber sees the latest snapshot and skips intermediate ones.
type FeedService struct {
	posts    FeedPostRepository
	location *time.Location
	now      func() time.Time

	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan []FeedEntry
}

func NewFeedService(posts FeedPostRepository, location *time.Location) *FeedService {
	if location == nil {
		location = time.Local
	}
	return &FeedService{
		posts:       posts,
		location:    location,
		now:         time.Now,
		subscribers: make(map[int]chan []FeedEntry),
	}
}

// Snapshot returns the full current render list, newest post first.
func (service *FeedService) Snapshot() ([]FeedEntry, error) {
	posts, err := service.posts.ListNewestFirst()
	if err != nil {
		return nil, err
	}
	return BuildFeedEntries(posts, service.location), nil
}

// Subscribe opens a snapshot stream. The current snapshot is delivered
// immediately, then one delivery follows each collection change. The stream
// ends when the returned cancel func runs or ctx is done; cancel is safe to
// call more than once.
func (service *FeedService) Subscribe(ctx context.Context) (<-chan []FeedEntry, func()) {
	deliveries := make(chan []FeedEntry, 1)

	service.mu.Lock()
	id := service.nextID
	service.nextID++
	service.subscribers[id] = deliveries
	service.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			service.mu.Lock()
			delete(service.subscribers, id)
			close(deliveries)
			service.mu.Unlock()
		})
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}

	if snapshot, err := service.Snapshot(); err == nil {
		service.deliver(id, snapshot)
	}

	return deliveries, cancel
}

// NotifyChanged re-queries the ordered collection and fans the fresh snapshot
// out to every subscriber. Call it after any insert, update or delete.
func (service *FeedService) NotifyChanged() {
	snapshot, err := service.Snapshot()
	if err != nil {
		log.Printf("feed: snapshot after change failed: %v", err)
		return
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	for _, subscriber := range service.subscribers {
		service.deliverLocked(subscriber, snapshot)
	}
}

// CreatePost appends a post to the collection and wakes the subscribers.
// An empty author is stored as-is; the render step supplies the default.
func (service *FeedService) CreatePost(author string, content string) (models.Post, error) {
	post := models.Post{
		Author:    strings.TrimSpace(author),
		Content:   strings.TrimSpace(content),
		Likes:     []string{},
		CreatedAt: service.now(),
	}
	if err := service.posts.Create(&post); err != nil {
		return models.Post{}, err
	}

	service.NotifyChanged()
	return post, nil
}

func (service *FeedService) deliver(id int, snapshot []FeedEntry) {
	service.mu.Lock()
	defer service.mu.Unlock()
	subscriber, ok := service.subscribers[id]
	if !ok {
		return
	}
	service.deliverLocked(subscriber, snapshot)
}

// deliverLocked replaces any undelivered snapshot with the newest one, so a
// stalled subscriber coalesces instead of blocking the hub.
func (service *FeedService) deliverLocked(subscriber chan []FeedEntry, snapshot []FeedEntry) {
	for {
		select {
		case subscriber <- snapshot:
			return
		default:
			select {
			case <-subscriber:
			default:
			}
		}
	}
}
