// filepath: internal/services/clock_service.go
package services

import (
	"devops-webapp/internal/models"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	timezoneCacheKey = "timezone"
	timezoneTTL      = 5 * time.Minute
	localtimePath    = "/etc/localtime"
)

var _ ClockService = (*clockService)(nil)

type clockService struct {
	now      func() time.Time
	resolver func() string
	cache    *cache.Cache
}

// NewClockService creates a ClockService using the wall clock and the host timezone.
func NewClockService() *clockService {
	return newClockService(time.Now, ResolveTimezone)
}

func newClockService(now func() time.Time, resolver func() string) *clockService {
	return &clockService{
		now:      now,
		resolver: resolver,
		cache:    cache.New(timezoneTTL, 2*timezoneTTL),
	}
}

// GetTime returns the current instant. Both representations come from the same reading.
func (s *clockService) GetTime() models.TimeInfo {
	now := s.now()
	return models.TimeInfo{
		CurrentTime: FormatISO(now),
		Timezone:    s.timezone(),
		Timestamp:   now.UnixMilli(),
	}
}

func (s *clockService) timezone() string {
	if v, ok := s.cache.Get(timezoneCacheKey); ok {
		return v.(string)
	}
	tz := s.resolver()
	s.cache.SetDefault(timezoneCacheKey, tz)
	return tz
}

// ResolveTimezone returns the IANA name of the host's local timezone.
func ResolveTimezone() string {
	return resolveTimezone(os.Getenv("TZ"), os.Readlink, time.Local)
}

// resolveTimezone checks TZ, then the /etc/localtime symlink, then the
// runtime's local zone, and settles on UTC.
func resolveTimezone(tzEnv string, readlink func(string) (string, error), local *time.Location) string {
	if tz := strings.TrimPrefix(tzEnv, ":"); tz != "" {
		if name, ok := zoneFromPath(tz); ok {
			return name
		}
		return tz
	}
	if target, err := readlink(localtimePath); err == nil {
		if name, ok := zoneFromPath(target); ok {
			return name
		}
	}
	if local != nil {
		if name := local.String(); name != "" && name != "Local" {
			return name
		}
	}
	return "UTC"
}

// zoneFromPath extracts "Area/City" from a path such as /usr/share/zoneinfo/Area/City.
func zoneFromPath(p string) (string, bool) {
	const marker = "zoneinfo/"
	i := strings.LastIndex(p, marker)
	if i < 0 {
		return "", false
	}
	name := p[i+len(marker):]
	name = strings.TrimPrefix(name, "posix/")
	name = strings.TrimPrefix(name, "right/")
	if name == "" {
		return "", false
	}
	return name, true
}
