package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/ytget/ytvd/internal/model"
	"github.com/ytget/ytvd/internal/platform"
)

// Service handles quality discovery and downloads through an Engine
type Service struct {
	engine         Engine
	container      string
	mergeFormat    string
	outputTemplate string

	// metadata caches extraction results by URL; nil when disabled
	metadata *cache.Cache

	// offered is the quality list of the last successful fetch, for offeredURL
	offeredURL   string
	offered      []model.Quality
	offeredMutex sync.Mutex
}

// NewService creates a new download service
func NewService(engine Engine) *Service {
	return &Service{
		engine:         engine,
		container:      DefaultContainer,
		mergeFormat:    DefaultMergeFormat,
		outputTemplate: DefaultOutputTemplate,
	}
}

// SetContainer sets the container extension qualities are restricted to
func (s *Service) SetContainer(ext string) {
	if ext == "" {
		ext = DefaultContainer
	}
	s.container = ext
}

// SetMergeFormat sets the container video and audio are merged into
func (s *Service) SetMergeFormat(format string) {
	if format == "" {
		format = DefaultMergeFormat
	}
	s.mergeFormat = format
}

// SetOutputTemplate sets the engine filename template
func (s *Service) SetOutputTemplate(template string) {
	if template == "" {
		template = DefaultOutputTemplate
	}
	s.outputTemplate = template
}

// SetMetadataCacheTTL enables caching of extraction results. Zero disables it.
func (s *Service) SetMetadataCacheTTL(ttl time.Duration) {
	if ttl <= 0 {
		s.metadata = nil
		return
	}
	s.metadata = cache.New(ttl, 2*ttl)
}

// FetchQualities lists the distinct heights available for url in the
// configured container, ascending.
func (s *Service) FetchQualities(ctx context.Context, rawURL string) ([]model.Quality, error) {
	url := model.NormalizeURL(rawURL)
	if url == "" {
		return nil, ErrEmptyURL
	}

	log := logrus.WithField("url", url)
	log.Info("Fetching qualities")

	s.setOffered("", nil)

	info, err := s.extract(ctx, url)
	if err != nil {
		log.WithError(err).Warn("Metadata extraction failed")
		return nil, &ExtractionError{URL: url, Err: err}
	}

	qualities := model.QualitiesFromFormats(info.Formats, s.container)
	if len(qualities) == 0 {
		log.Warnf("No %s formats among %d reported", s.container, len(info.Formats))
		return nil, &ExtractionError{URL: url, Err: ErrNoQualities}
	}

	s.setOffered(url, qualities)

	log.WithField("qualities", model.QualityLabels(qualities)).Info("Qualities fetched")
	return qualities, nil
}

// extract returns metadata for url, consulting the cache when enabled
func (s *Service) extract(ctx context.Context, url string) (*model.MediaInfo, error) {
	if s.metadata != nil {
		if cached, ok := s.metadata.Get(url); ok {
			return cached.(*model.MediaInfo), nil
		}
	}

	info, err := s.engine.ExtractInfo(ctx, url)
	if err != nil {
		return nil, err
	}

	if s.metadata != nil {
		s.metadata.Set(url, info, cache.DefaultExpiration)
	}
	return info, nil
}

// Offered returns the qualities of the last fetch when it was for url.
// Only one list is kept; fetching another URL replaces it.
func (s *Service) Offered(rawURL string) []model.Quality {
	s.offeredMutex.Lock()
	defer s.offeredMutex.Unlock()
	if s.offeredURL != model.NormalizeURL(rawURL) {
		return nil
	}
	return s.offered
}

func (s *Service) setOffered(url string, qualities []model.Quality) {
	s.offeredMutex.Lock()
	s.offeredURL = url
	s.offered = qualities
	s.offeredMutex.Unlock()
}

// Download validates req, runs the engine, and reports progress through
// onProgress. The offered list is dropped once the engine returns, so another
// fetch is required before downloading again.
func (s *Service) Download(ctx context.Context, req model.Request, onProgress ProgressFunc) (*model.Result, error) {
	url := req.NormalizedURL()
	if url == "" {
		return nil, ErrEmptyURL
	}

	if err := platform.ValidateFolder(req.OutputFolder); err != nil {
		if errors.Is(err, platform.ErrFolderNotSet) {
			return nil, ErrNoFolder
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFolder, err)
	}

	if !model.ContainsQuality(s.Offered(url), req.Quality) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, req.Quality)
	}

	selector, err := FormatSelector(req.Quality)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownQuality, err)
	}

	opts := Options{
		Format:         selector,
		OutputTemplate: OutputPathTemplate(req.OutputFolder, s.outputTemplate),
		MergeFormat:    s.mergeFormat,
	}

	log := logrus.WithFields(logrus.Fields{
		"url":      url,
		"quality":  req.Quality,
		"selector": selector,
		"folder":   req.OutputFolder,
	})
	log.Info("Starting download")

	out, err := s.engine.Download(ctx, url, opts, onProgress)

	s.setOffered("", nil)

	if err != nil {
		log.WithError(err).Error("Download failed")
		return nil, &DownloadError{URL: url, Quality: req.Quality, Err: err}
	}

	result := &model.Result{
		Request:    req,
		Selector:   selector,
		FinishedAt: time.Now(),
	}
	if out != nil {
		result.Title = out.Title
		result.OutputPath = out.Path
	}

	log.WithField("output", result.OutputPath).Info("Download completed")
	return result, nil
}
