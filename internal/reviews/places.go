package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/expertrohr/web/internal/config"
	"github.com/expertrohr/web/internal/models"
)

const (
	defaultPlacesURL = "https://maps.googleapis.com/maps/api/place/details/json"
	statusOK         = "OK"
	detailFields     = "rating,user_ratings_total,reviews"
)

// PlacesClient reads rating and reviews of one place from the Google
// Places details endpoint.
type PlacesClient struct {
	Config    config.ReviewsConfig
	Client    *http.Client
	Validator *validator.Validate
}

type placesResponse struct {
	Status string `json:"status"`
	Result struct {
		Rating           float64        `json:"rating"`
		UserRatingsTotal int            `json:"user_ratings_total"`
		Reviews          []placesReview `json:"reviews"`
	} `json:"result"`
}

// placesReview lists every field forwarded to clients. Anything else the
// provider sends is dropped at decode time.
type placesReview struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	RelativeTimeDescription string `json:"relative_time_description"`
	ProfilePhotoURL         string `json:"profile_photo_url"`
}

// validate is shared by clients built without a Validator; validator caches
// struct metadata per instance.
var validate = validator.New()

func (p PlacesClient) structValidator() *validator.Validate {
	if p.Validator != nil {
		return p.Validator
	}
	return validate
}

func (p PlacesClient) Summary(ctx context.Context) (models.ReviewSummary, error) {
	if err := p.structValidator().Struct(p.Config); err != nil {
		return models.ReviewSummary{}, fmt.Errorf("%w: %v", ErrMisconfigured, err)
	}
	if p.Client == nil {
		p.Client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint(), nil)
	if err != nil {
		return models.ReviewSummary{}, err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return models.ReviewSummary{}, fmt.Errorf("places request failed: %w", redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return models.ReviewSummary{}, err
	}
	var r placesResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return models.ReviewSummary{}, fmt.Errorf("places decode: %w", err)
	}
	if r.Status != statusOK {
		return models.ReviewSummary{}, &UpstreamError{Status: r.Status, Payload: json.RawMessage(body)}
	}
	return project(r), nil
}

func (p PlacesClient) endpoint() string {
	base := p.Config.URL
	if base == "" {
		base = defaultPlacesURL
	}
	q := url.Values{}
	q.Set("place_id", p.Config.PlaceID)
	q.Set("fields", detailFields)
	q.Set("key", p.Config.APIKey)
	if p.Config.Language != "" {
		q.Set("language", p.Config.Language)
	}
	return base + "?" + q.Encode()
}

func project(r placesResponse) models.ReviewSummary {
	out := models.ReviewSummary{
		Rating:       r.Result.Rating,
		TotalRatings: r.Result.UserRatingsTotal,
		Reviews:      make([]models.ReviewEntry, 0, len(r.Result.Reviews)),
	}
	for _, rv := range r.Result.Reviews {
		out.Reviews = append(out.Reviews, models.ReviewEntry{
			AuthorName:      rv.AuthorName,
			Rating:          rv.Rating,
			Text:            rv.Text,
			RelativeTime:    rv.RelativeTimeDescription,
			ProfilePhotoURL: rv.ProfilePhotoURL,
		})
	}
	return out
}

// redact drops the request url, which carries the api key.
func redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
