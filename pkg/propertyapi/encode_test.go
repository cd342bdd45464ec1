package propertyapi

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formPart struct {
	name        string
	value       string
	filename    string
	contentType string
}

// readParts decodes an encoded body back into its parts, in order.
func readParts(t *testing.T, contentType string, body []byte) []formPart {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(strings.NewReader(string(body)), params["boundary"])
	var parts []formPart
	for {
		p, err := r.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, formPart{
			name:        p.FormName(),
			value:       string(data),
			filename:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
		})
	}
	return parts
}

func memoryFiles(contents map[string]string) FileOpener {
	return FileOpenerFunc(func(_ context.Context, uri string) (io.ReadCloser, error) {
		data, ok := contents[uri]
		if !ok {
			return nil, errors.New("no such file")
		}
		return io.NopCloser(strings.NewReader(data)), nil
	})
}

func minimalListing() *models.PropertyListingInput {
	return &models.PropertyListingInput{
		Title:        "A",
		Description:  "B",
		PropertyType: "residential",
		Price:        "100",
		Address:      "X",
		Coordinates:  []models.Numeric{"10", "20"},
	}
}

func TestPrepare_MinimalListing(t *testing.T) {
	client := NewClient(DefaultClientConfig("http://localhost"))

	payload, err := client.Prepare(context.Background(), minimalListing())
	require.NoError(t, err)

	require.Equal(t, []string{"title", "description", "propertyType", "price", "address", "longitude", "latitude"}, payload.Fields)

	parts := readParts(t, payload.ContentType, payload.Body)
	got := map[string]string{}
	for _, p := range parts {
		got[p.name] = p.value
	}
	assert.Equal(t, map[string]string{
		"title":        "A",
		"description":  "B",
		"propertyType": "residential",
		"price":        "100",
		"address":      "X",
		"longitude":    "10",
		"latitude":     "20",
	}, got)
}

func TestPrepare_TrimsAndCanonicalizes(t *testing.T) {
	client := NewClient(DefaultClientConfig("http://localhost"))
	in := minimalListing()
	in.Title = "  Sea view villa \n"
	in.Price = " 250000.50 "
	in.Coordinates = []models.Numeric{"-0.1275", "51.50720"}
	in.Bedrooms = "3.0"

	payload, err := client.Prepare(context.Background(), in)
	require.NoError(t, err)

	values := map[string]string{}
	for _, p := range readParts(t, payload.ContentType, payload.Body) {
		values[p.name] = p.value
	}
	assert.Equal(t, "Sea view villa", values["title"])
	assert.Equal(t, "250000.5", values["price"])
	assert.Equal(t, "-0.1275", values["longitude"])
	assert.Equal(t, "51.5072", values["latitude"])
	assert.Equal(t, "3", values["bedrooms"])
}

func TestPrepare_AllOptionalFields(t *testing.T) {
	cfg := DefaultClientConfig("http://localhost")
	cfg.FileOpener = memoryFiles(map[string]string{
		"file:///photos/front.jpg": "\xff\xd8\xff\xe0jpegdata",
		"file:///photos/back.png":  "pngdata",
		"file:///docs/deed.pdf":    "%PDF-1.4",
	})
	client := NewClient(cfg)

	auction := true
	in := minimalListing()
	in.Area = "120"
	in.Bedrooms = "3"
	in.Bathrooms = "2"
	in.YearBuilt = "1999"
	in.MinimumBid = "90"
	in.ConstructionStatus = "completed"
	in.LegalDescription = "Lot 4"
	in.PropertyID = "PRP-1"
	in.VerificationDocument = "title-deed"
	in.IsAuctionEnabled = &auction
	in.AuctionEndTime = "2026-12-01T10:30:00+02:00"
	in.Amenities = []string{"pool", "gym"}
	in.Images = []models.FileRef{
		{URI: "file:///photos/front.jpg"},
		{URI: "file:///photos/back.png", Type: "image/png", Name: "rear.png"},
	}
	in.Documents = &models.FileRef{URI: "file:///docs/deed.pdf"}

	payload, err := client.Prepare(context.Background(), in)
	require.NoError(t, err)

	require.Equal(t, []string{
		"title", "description", "propertyType", "price", "address", "longitude", "latitude",
		"area", "bedrooms", "bathrooms", "yearBuilt", "minimumBid",
		"constructionStatus", "legalDescription", "propertyId", "verificationDocument",
		"isAuctionEnabled", "auctionEndTime", "amenities",
		"images", "images", "documents",
	}, payload.Fields)

	parts := readParts(t, payload.ContentType, payload.Body)
	require.Len(t, parts, len(payload.Fields))

	byName := map[string]formPart{}
	for _, p := range parts[:19] {
		byName[p.name] = p
	}
	assert.Equal(t, "true", byName["isAuctionEnabled"].value)
	assert.Equal(t, "2026-12-01T08:30:00.000Z", byName["auctionEndTime"].value)
	assert.Equal(t, `["pool","gym"]`, byName["amenities"].value)
	assert.Equal(t, "1999", byName["yearBuilt"].value)

	front, back, deed := parts[19], parts[20], parts[21]
	assert.Equal(t, "front.jpg", front.filename)
	assert.Equal(t, "image/jpeg", front.contentType)
	assert.Equal(t, "\xff\xd8\xff\xe0jpegdata", front.value)
	assert.Equal(t, "rear.png", back.filename)
	assert.Equal(t, "image/png", back.contentType)
	assert.Equal(t, "deed.pdf", deed.filename)
	assert.Equal(t, "application/pdf", deed.contentType)
}

func TestPrepare_OmitsBlankOptionals(t *testing.T) {
	client := NewClient(DefaultClientConfig("http://localhost"))
	in := minimalListing()
	in.ConstructionStatus = "   "
	in.Amenities = []string{}
	in.Area = " "

	payload, err := client.Prepare(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, payload.Fields, 7)
}

func TestPrepare_UnreadableImage(t *testing.T) {
	cfg := DefaultClientConfig("http://localhost")
	cfg.FileOpener = memoryFiles(nil)
	client := NewClient(cfg)

	in := minimalListing()
	in.Images = []models.FileRef{{URI: "file:///missing.jpg"}}

	_, err := client.Prepare(context.Background(), in)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "image 1 could not be read", err.Error())
}

func TestPrepare_ContentType(t *testing.T) {
	client := NewClient(DefaultClientConfig("http://localhost"))

	payload, err := client.Prepare(context.Background(), minimalListing())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload.ContentType, "multipart/form-data; boundary="))
	assert.NotEmpty(t, payload.Body)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "a.jpg", fileName("file:///tmp/a.jpg"))
	assert.Equal(t, "b.png", fileName("/var/data/b.png"))
	assert.Equal(t, "c.pdf", fileName("content://media/external/c.pdf"))

	// URL syntax only applies to references with a scheme.
	assert.Equal(t, "house#2.jpg", fileName("/photos/house#2.jpg"))
	assert.Equal(t, "a?b.jpg", fileName("/photos/a?b.jpg"))
	assert.Equal(t, "a%20b.jpg", fileName("/tmp/a%20b.jpg"))
	assert.Equal(t, "a b.jpg", fileName("file:///tmp/a%20b.jpg"))
}
