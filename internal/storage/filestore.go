package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"schoolsite/internal/domain"
	"schoolsite/pkg/cloudinary"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Category is an upload subdirectory, or a logical kind that resolves to one.
type Category string

const (
	Gallery          Category = "gallery"
	Papers           Category = "papers"
	Videos           Category = "videos"
	BackgroundVideos Category = "background_videos"

	Image    Category = "image"
	Document Category = "document"
	Video    Category = "video"
)

// Directories lists every subdirectory created under the upload root.
var Directories = []Category{Papers, Videos, Gallery, BackgroundVideos}

var (
	imageExts    = extSet("png", "jpg", "jpeg", "gif")
	documentExts = extSet("pdf", "doc", "docx")
	videoExts    = extSet("mp4", "avi", "mov", "wmv")
)

func extSet(exts ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		m[e] = struct{}{}
	}
	return m
}

// resolve maps a category to its directory and allow-list.
func resolve(c Category) (Category, map[string]struct{}, error) {
	switch c {
	case Image, Gallery:
		return Gallery, imageExts, nil
	case Document, Papers:
		return Papers, documentExts, nil
	case Video, Videos:
		return Videos, videoExts, nil
	case BackgroundVideos:
		return BackgroundVideos, videoExts, nil
	}
	return "", nil, fmt.Errorf("unknown upload category %q", c)
}

// ParseCategory accepts only concrete directory names.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Directories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// Allowed reports whether name carries an extension accepted for category.
func Allowed(name string, c Category) bool {
	_, exts, err := resolve(c)
	if err != nil {
		return false
	}
	_, ok := exts[extension(name)]
	return ok
}

// ClassifyResource picks the directory for an e-learning upload from its extension.
func ClassifyResource(name string) (Category, error) {
	ext := extension(name)
	if _, ok := documentExts[ext]; ok {
		return Papers, nil
	}
	if _, ok := videoExts[ext]; ok {
		return Videos, nil
	}
	return "", domain.ErrRejectedFormat
}

const fallbackStem = "upload"

type Option func(*Store)

// WithClock overrides time.Now for the stored-name prefix.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithMirror pushes gallery images and background videos to Cloudinary as well.
func WithMirror(client cloudinary.Client, folder string) Option {
	return func(s *Store) {
		s.mirror = client
		s.folder = folder
	}
}

func WithUploadCounter(counter *prometheus.CounterVec) Option {
	return func(s *Store) { s.uploads = counter }
}

// Store keeps uploads on local disk under one root.
type Store struct {
	root    string
	now     func() time.Time
	log     *zap.Logger
	mirror  cloudinary.Client
	folder  string
	uploads *prometheus.CounterVec
}

// New creates the upload root and its fixed subdirectories.
func New(root string, log *zap.Logger, opts ...Option) (*Store, error) {
	s := &Store{root: root, now: time.Now, log: log}
	for _, opt := range opts {
		opt(s)
	}
	for _, dir := range Directories {
		if err := os.MkdirAll(filepath.Join(root, string(dir)), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *Store) Root() string { return s.root }

// Accept writes r under category and returns the stored name
// (timestamp prefix plus sanitised declared name). Rejected formats return
// domain.ErrRejectedFormat before anything is written. A name whose stem
// sanitises away is stored as upload.<ext>.
func (s *Store) Accept(ctx context.Context, r io.Reader, declaredName string, category Category) (string, error) {
	dir, exts, err := resolve(category)
	if err != nil {
		return "", err
	}
	ext := extension(declaredName)
	if _, ok := exts[ext]; !ok {
		s.count(dir, "rejected")
		return "", domain.ErrRejectedFormat
	}
	safe := SecureFilename(declaredName)
	if extension(safe) != ext {
		safe = fallbackStem + "." + ext
	}

	stored := s.now().Format("20060102_150405_") + safe
	path := filepath.Join(s.root, string(dir), stored)
	f, err := os.Create(path)
	if err != nil {
		s.count(dir, "error")
		return "", fmt.Errorf("create %s: %w", stored, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		s.count(dir, "error")
		return "", fmt.Errorf("write %s: %w", stored, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		s.count(dir, "error")
		return "", fmt.Errorf("close %s: %w", stored, err)
	}
	s.count(dir, "stored")
	s.mirrorUpload(ctx, dir, stored, path)
	return stored, nil
}

// Delete removes a stored file. A file that is already gone is not an error.
func (s *Store) Delete(ctx context.Context, category Category, storedName string) error {
	path, err := s.pathFor(category, storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.mirrorDestroy(ctx, category, storedName)
	return nil
}

// Path returns the on-disk location of an existing stored file.
func (s *Store) Path(category Category, storedName string) (string, error) {
	path, err := s.pathFor(category, storedName)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", domain.ErrNotFound
	}
	return path, nil
}

func (s *Store) pathFor(category Category, storedName string) (string, error) {
	dir, _, err := resolve(category)
	if err != nil {
		return "", domain.ErrNotFound
	}
	if storedName == "" || storedName != filepath.Base(storedName) || strings.HasPrefix(storedName, ".") {
		return "", domain.ErrNotFound
	}
	return filepath.Join(s.root, string(dir), storedName), nil
}

func (s *Store) count(dir Category, result string) {
	if s.uploads != nil {
		s.uploads.WithLabelValues(string(dir), result).Inc()
	}
}

func mirrored(dir Category) (string, bool) {
	switch dir {
	case Gallery:
		return cloudinary.ResourceImage, true
	case BackgroundVideos:
		return cloudinary.ResourceVideo, true
	}
	return "", false
}

func publicID(dir Category, storedName string) string {
	return string(dir) + "/" + strings.TrimSuffix(storedName, filepath.Ext(storedName))
}

func (s *Store) mirrorUpload(ctx context.Context, dir Category, stored, path string) {
	kind, ok := mirrored(dir)
	if s.mirror == nil || !ok {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		s.log.Warn("mirror open failed", zap.String("file", stored), zap.Error(err))
		return
	}
	defer f.Close()

	id := strings.TrimSuffix(stored, filepath.Ext(stored))
	folder := s.folder + "/" + string(dir)
	if kind == cloudinary.ResourceVideo {
		_, err = s.mirror.UploadVideo(ctx, f, folder, id)
	} else {
		_, err = s.mirror.UploadImage(ctx, f, folder, id)
	}
	if err != nil {
		s.log.Warn("mirror upload failed", zap.String("file", stored), zap.Error(err))
	}
}

func (s *Store) mirrorDestroy(ctx context.Context, category Category, storedName string) {
	dir, _, _ := resolve(category)
	kind, ok := mirrored(dir)
	if s.mirror == nil || !ok {
		return
	}
	if err := s.mirror.Destroy(ctx, s.folder+"/"+publicID(dir, storedName), kind); err != nil {
		s.log.Warn("mirror destroy failed", zap.String("file", storedName), zap.Error(err))
	}
}
