package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"backend/utils"
)

type PredictionResult struct {
	PredictedName       string    `json:"predicted_name"`
	PredictedConfidence float64   `json:"predicted_confidence"`
	ImageURL            string    `json:"image_url"`
	Foods               any       `json:"foods"`
	Meta                *PageMeta `json:"meta"`
}

type modelResponse struct {
	Best struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	} `json:"best"`
}

// PredictionService sends a food photo to the model endpoint and looks the
// predicted label up in the food catalog.
type PredictionService struct {
	foods    *FoodService
	endpoint string
	client   *http.Client
}

func NewPredictionService(foods *FoodService, endpoint string) *PredictionService {
	return &PredictionService{
		foods:    foods,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *PredictionService) Predict(image []byte, filename, contentType string) (*PredictionResult, error) {
	if filename == "" {
		filename = "photo.jpg"
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Stream: "prediction model", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &UpstreamError{
			Stream: "prediction model",
			Err:    fmt.Errorf("status %d: %s", resp.StatusCode, payload),
		}
	}

	var result modelResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &UpstreamError{Stream: "prediction model", Err: err}
	}
	if result.Best.Name == "" {
		return nil, NewNotFoundError("model returned no usable prediction")
	}

	imageURL, err := utils.UploadImageToS3(image, contentType, "predictions")
	if err != nil {
		return nil, err
	}

	foods, meta, err := s.foods.ListFoods(CatalogListQuery{Q: result.Best.Name, Page: 1, Limit: 10})
	if err != nil {
		return nil, err
	}

	return &PredictionResult{
		PredictedName:       result.Best.Name,
		PredictedConfidence: result.Best.Confidence,
		ImageURL:            imageURL,
		Foods:               foods,
		Meta:                meta,
	}, nil
}
