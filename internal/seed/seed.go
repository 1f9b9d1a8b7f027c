// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumGroups   int
	NumPosts    int
	NumComments int
	NumFollows  int
	ShouldClean bool
	// SkipBcrypt uses a plaintext password for faster dev seeding
	SkipBcrypt bool
}

var groupTitles = []string{
	"Technology", "Books", "Travel", "Food", "Music", "Cinema",
	"Photography", "Science", "History", "Gaming", "Fitness", "Art",
}

// Seeder creates demo data in the application database.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows, children first.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Follow{}, &models.Comment{}, &models.Post{},
		&models.Group{}, &models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}
	return nil
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (s *Seeder) CreateUser(skipBcrypt bool, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}

	if skipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup constructs and persists a sample group with a slug derived
// from its title.
func (s *Seeder) CreateGroup(title string, overrides ...func(*models.Group)) (*models.Group, error) {
	group := &models.Group{
		Title:       title,
		Slug:        slugify(title),
		Description: gofakeit.Sentence(12),
	}

	for _, override := range overrides {
		override(group)
	}

	if err := s.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost constructs and persists a sample post by the given author,
// optionally attached to a group.
func (s *Seeder) CreatePost(author *models.User, group *models.Group, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
		AuthorID: author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if s.rng.Intn(3) == 0 {
		post.Image = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	}

	// realistic created_at spread over the past quarter
	daysBack := s.rng.Intn(90)
	hoursBack := s.rng.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the given post.
func (s *Seeder) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     gofakeit.Sentence(s.rng.Intn(15) + 3),
		AuthorID: author.ID,
		PostID:   post.ID,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge between two distinct users.
func (s *Seeder) CreateFollow(user, following *models.User) (*models.Follow, error) {
	if user.ID == following.ID {
		return nil, fmt.Errorf("cannot seed a self-follow for user %d", user.ID)
	}
	follow := &models.Follow{
		UserID:      user.ID,
		FollowingID: following.ID,
	}
	if err := s.db.Create(follow).Error; err != nil {
		return nil, err
	}
	return follow, nil
}

// Run seeds the database according to the options: groups first, then
// users, posts spread across groups, comments and a deduplicated follow
// mesh.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	numGroups := opts.NumGroups
	if numGroups > len(groupTitles) {
		numGroups = len(groupTitles)
	}
	groups := make([]*models.Group, 0, numGroups)
	for i := 0; i < numGroups; i++ {
		group, err := s.CreateGroup(groupTitles[i])
		if err != nil {
			return fmt.Errorf("seeding groups: %w", err)
		}
		groups = append(groups, group)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.CreateUser(opts.SkipBcrypt)
		if err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		// roughly a third of posts live outside any group
		var group *models.Group
		if len(groups) > 0 && s.rng.Intn(3) != 0 {
			group = groups[s.rng.Intn(len(groups))]
		}
		post, err := s.CreatePost(author, group)
		if err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}
		posts = append(posts, post)
	}

	for i := 0; i < opts.NumComments && len(posts) > 0; i++ {
		author := users[s.rng.Intn(len(users))]
		post := posts[s.rng.Intn(len(posts))]
		if _, err := s.CreateComment(author, post); err != nil {
			return fmt.Errorf("seeding comments: %w", err)
		}
	}

	seen := make(map[[2]uint]bool)
	created := 0
	for attempts := 0; created < opts.NumFollows && attempts < opts.NumFollows*10; attempts++ {
		user := users[s.rng.Intn(len(users))]
		following := users[s.rng.Intn(len(users))]
		if user.ID == following.ID {
			continue
		}
		pair := [2]uint{user.ID, following.ID}
		if seen[pair] {
			continue
		}
		if _, err := s.CreateFollow(user, following); err != nil {
			return fmt.Errorf("seeding follows: %w", err)
		}
		seen[pair] = true
		created++
	}

	log.Printf("seeded %d groups, %d users, %d posts, %d comments, %d follows",
		len(groups), len(users), len(posts), opts.NumComments, created)
	return nil
}

// slugify lowercases a title and replaces runs of non-alphanumerics with hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
