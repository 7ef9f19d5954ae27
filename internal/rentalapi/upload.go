package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"carRental/internal/models"
)

// UpdateProfileImage uploads a new avatar and returns its URL. The remote
// API takes uploads as a GraphQL multipart request (operations, map and one
// file part), which the GraphQL client does not produce.
func (c *Client) UpdateProfileImage(
	ctx context.Context,
	token string,
	userID models.ID,
	filename string,
	image io.Reader,
) (string, error) {
	const op = "rentalapi.UpdateProfileImage"

	body, contentType, err := uploadBody(userID, filename, image)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Apollo-Require-Preflight", "true")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	var resp struct {
		Data struct {
			UpdateProfileImage envelope[struct {
				ProfileImage string `json:"profileImage"`
			}] `json:"updateProfileImage"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("%s: decode response (status %d): %w", op, res.StatusCode, err)
	}

	if len(resp.Errors) > 0 {
		return "", fmt.Errorf("%s: %w", op, errors.New("graphql: "+resp.Errors[0].Message))
	}

	out := resp.Data.UpdateProfileImage
	if err := out.check("updateProfileImage"); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return out.Data.ProfileImage, nil
}

func uploadBody(userID models.ID, filename string, image io.Reader) (*bytes.Buffer, string, error) {
	operations, err := json.Marshal(map[string]any{
		"query": mUpdateProfileImage,
		"variables": map[string]any{
			"userId":       userID.String(),
			"profileImage": nil,
		},
	})
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("operations", string(operations)); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("map", `{"0":["variables.profileImage"]}`); err != nil {
		return nil, "", err
	}

	part, err := w.CreateFormFile("0", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
