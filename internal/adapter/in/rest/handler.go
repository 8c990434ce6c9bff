package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"tweetfeed/internal/model"
	"tweetfeed/internal/service"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps POST /tweet bodies.
const maxBodyBytes = 64 << 10

type TweetService interface {
	ListTweets(ctx context.Context) (model.Envelope[model.Tweet], error)
	CreateTweet(ctx context.Context, req service.CreateTweetRequest) (model.Tweet, error)
	DeleteTweet(ctx context.Context, id string) error
}

type Handler struct {
	tweets TweetService
}

func NewHandler(tweets TweetService) *Handler {
	return &Handler{tweets: tweets}
}

type createTweetInput struct {
	Message *string `json:"message"`
}

type statusOutput struct {
	Status string `json:"status"`
}

// ListTweets handles GET /tweets.
func (h *Handler) ListTweets(w http.ResponseWriter, r *http.Request) {
	out, err := h.tweets.ListTweets(r.Context())
	if err != nil {
		handleServiceError(r.Context(), w, err, "Invalid request")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, out)
}

// CreateTweet handles POST /tweet with {"message": "..."}.
func (h *Handler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var in createTweetInput
	if err := dec.Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(r.Context(), w, http.StatusRequestEntityTooLarge, "PayloadTooLarge", "Request body too large")
			return
		}
		writeError(r.Context(), w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if in.Message == nil {
		writeError(r.Context(), w, http.StatusBadRequest, "InvalidRequest", "message is required")
		return
	}

	tweet, err := h.tweets.CreateTweet(r.Context(), service.CreateTweetRequest{Message: *in.Message})
	if err != nil {
		handleServiceError(r.Context(), w, err, "message must not be blank")
		return
	}

	w.Header().Set("Location", "/tweet/"+tweet.ID)
	writeJSON(r.Context(), w, http.StatusCreated, tweet)
}

// DeleteTweet handles DELETE /tweet/{id}. Unknown ids still get 200.
func (h *Handler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.tweets.DeleteTweet(r.Context(), id); err != nil {
		handleServiceError(r.Context(), w, err, "tweet id is required")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, statusOutput{Status: "Tweet deleted successfully"})
}
