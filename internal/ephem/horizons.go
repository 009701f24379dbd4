package ephem

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/litescript/ls-orrery/internal/astro"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// RequestTimeout is the HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// VectorCacheTTL is how close two epochs must be to share a cached
	// vector. Nothing in the catalog moves visibly in ten minutes, and
	// a position queried for a fixed past epoch never changes at all.
	VectorCacheTTL = 10 * time.Minute

	// Horizons asks API users to keep request rates modest. A full
	// planet sweep is nine queries, so allow a burst that size and
	// refill at a polite trickle.
	requestsPerSecond = 5
	requestBurst      = 9
)

// HorizonsClient queries JPL Horizons for heliocentric state vectors.
type HorizonsClient struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string

	mu    sync.RWMutex
	cache map[int]cachedVector
}

// cachedVector stores one body's position for the epoch it was
// queried at.
type cachedVector struct {
	pos   astro.Vec3
	epoch time.Time
}

// NewHorizonsClient creates a rate-limited Horizons API client.
func NewHorizonsClient() *HorizonsClient {
	return &HorizonsClient{
		client:  &http.Client{Timeout: RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		baseURL: HorizonsAPIURL,
		cache:   make(map[int]cachedVector),
	}
}

// Name implements PositionProvider.
func (c *HorizonsClient) Name() string {
	return "horizons"
}

// HeliocentricPosition implements PositionProvider. Results are cached
// per body; a cached vector serves any epoch within VectorCacheTTL of
// the one it was fetched for.
func (c *HorizonsClient) HeliocentricPosition(horizonsID int, t time.Time) (astro.Vec3, error) {
	if horizonsID == 0 {
		return astro.Vec3{}, fmt.Errorf("ephem: body has no horizons id")
	}

	c.mu.RLock()
	cached, ok := c.cache[horizonsID]
	c.mu.RUnlock()
	if ok && absDuration(t.Sub(cached.epoch)) < VectorCacheTTL {
		return cached.pos, nil
	}

	// Reserve a limiter slot and sleep it off instead of Wait, so the
	// provider interface stays context-free like the rest of the
	// geometry pipeline.
	r := c.limiter.Reserve()
	if !r.OK() {
		return astro.Vec3{}, fmt.Errorf("ephem: rate limiter rejected request")
	}
	time.Sleep(r.Delay())

	pos, err := c.queryVectors(horizonsID, t)
	if err != nil {
		return astro.Vec3{}, err
	}

	c.mu.Lock()
	c.cache[horizonsID] = cachedVector{pos: pos, epoch: t}
	c.mu.Unlock()

	return pos, nil
}

// queryVectors requests heliocentric ecliptic state vectors for one
// body at one epoch.
func (c *HorizonsClient) queryVectors(horizonsID int, t time.Time) (astro.Vec3, error) {
	// Values must be quoted with single quotes.
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%d'", horizonsID))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "VECTORS")
	params.Set("CENTER", "'@10'") // Sun center
	params.Set("REF_PLANE", "ECLIPTIC")
	params.Set("REF_SYSTEM", "ICRF")
	params.Set("VEC_TABLE", "'2'") // position only, no velocity
	params.Set("VEC_LABELS", "NO")
	params.Set("OUT_UNITS", "'AU-D'")
	params.Set("START_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t)))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t.Add(time.Minute))))
	params.Set("STEP_SIZE", "'1 m'")

	reqURL := c.baseURL + "?" + params.Encode()

	resp, err := c.client.Get(reqURL)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return astro.Vec3{}, fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("failed to read response: %w", err)
	}

	return parseVectorResponse(body)
}

// horizonsResponse represents the JSON API envelope. The ephemeris
// itself arrives as a text blob in Result.
type horizonsResponse struct {
	Signature struct {
		Version string `json:"version"`
		Source  string `json:"source"`
	} `json:"signature"`
	Result string `json:"result"`
}

// parseVectorResponse extracts the first position vector from a
// Horizons JSON response.
func parseVectorResponse(body []byte) (astro.Vec3, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return astro.Vec3{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	// The data section sits between $$SOE and $$EOE markers.
	soeIdx := strings.Index(resp.Result, "$$SOE")
	eoeIdx := strings.Index(resp.Result, "$$EOE")
	if soeIdx == -1 || eoeIdx == -1 || soeIdx >= eoeIdx {
		return astro.Vec3{}, fmt.Errorf("could not find vector data markers")
	}

	dataSection := resp.Result[soeIdx+5 : eoeIdx]
	lines := strings.Split(dataSection, "\n")

	// Each record is a Julian-date line followed by the coordinates,
	// either labeled (X = ... Y = ... Z = ...) or three bare numbers.
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "A.D.") {
			continue
		}

		if strings.Contains(line, "X =") {
			return parseVectorLabeled(line)
		}

		vec, err := parseVectorUnlabeled(line)
		if err == nil {
			return vec, nil
		}
	}

	return astro.Vec3{}, fmt.Errorf("could not parse vector data")
}

// parseVectorLabeled parses: X = 1.23E+00 Y = 2.34E+00 Z = 3.45E-01
func parseVectorLabeled(line string) (astro.Vec3, error) {
	parts := strings.Split(line, "=")
	if len(parts) < 4 {
		return astro.Vec3{}, fmt.Errorf("invalid labeled format")
	}

	// parts[1] holds "x_value Y", parts[2] "y_value Z", parts[3] "z_value".
	xStr := strings.Fields(parts[1])[0]
	yStr := strings.Fields(parts[2])[0]
	zStr := strings.TrimSpace(parts[3])

	x, err := strconv.ParseFloat(xStr, 64)
	if err != nil {
		return astro.Vec3{}, err
	}
	y, err := strconv.ParseFloat(yStr, 64)
	if err != nil {
		return astro.Vec3{}, err
	}
	z, err := strconv.ParseFloat(zStr, 64)
	if err != nil {
		return astro.Vec3{}, err
	}

	return astro.Vec3{X: x, Y: y, Z: z}, nil
}

// parseVectorUnlabeled parses: 1.23E+00  2.34E+00  3.45E-01
func parseVectorUnlabeled(line string) (astro.Vec3, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return astro.Vec3{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return astro.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return astro.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return astro.Vec3{}, err
	}

	return astro.Vec3{X: x, Y: y, Z: z}, nil
}

// formatHorizonsTime formats a time for the Horizons API.
func formatHorizonsTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
