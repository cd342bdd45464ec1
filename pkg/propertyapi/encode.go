package propertyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/internal/validators"

	"github.com/gabriel-vasile/mimetype"
)

const (
	auctionTimeLayout   = "2006-01-02T15:04:05.000Z07:00"
	documentContentType = "application/pdf"
)

// EncodedRequestBody is a ready-to-send multipart body. It is built once per
// submission and reused unchanged by every retry.
type EncodedRequestBody struct {
	ContentType string
	Body        []byte
	// Fields lists the form part names in the order they were written
	Fields []string
}

// Prepare validates the listing and encodes it. Nothing is sent.
func (c *Client) Prepare(ctx context.Context, input *models.PropertyListingInput) (*EncodedRequestBody, error) {
	if err := c.validator.ValidateCreate(input); err != nil {
		return nil, err
	}
	return c.encodeListing(ctx, input)
}

func (c *Client) encodeListing(ctx context.Context, input *models.PropertyListingInput) (*EncodedRequestBody, error) {
	var buf bytes.Buffer
	enc := &formEncoder{w: multipart.NewWriter(&buf), files: c.files}

	enc.text("title", input.Title)
	enc.text("description", input.Description)
	enc.text("propertyType", input.PropertyType)
	enc.number("price", input.Price)
	enc.text("address", input.Address)
	enc.number("longitude", input.Coordinates[0])
	enc.number("latitude", input.Coordinates[1])

	enc.optionalNumber("area", input.Area)
	enc.optionalNumber("bedrooms", input.Bedrooms)
	enc.optionalNumber("bathrooms", input.Bathrooms)
	enc.optionalNumber("yearBuilt", input.YearBuilt)
	enc.optionalNumber("minimumBid", input.MinimumBid)
	enc.optionalText("constructionStatus", input.ConstructionStatus)
	enc.optionalText("legalDescription", input.LegalDescription)
	enc.optionalText("propertyId", input.PropertyID)
	enc.optionalText("verificationDocument", input.VerificationDocument)
	if input.IsAuctionEnabled != nil {
		enc.field("isAuctionEnabled", strconv.FormatBool(*input.IsAuctionEnabled))
	}
	if strings.TrimSpace(input.AuctionEndTime) != "" {
		enc.dateTime("auctionEndTime", input.AuctionEndTime)
	}
	if len(input.Amenities) > 0 {
		enc.list("amenities", input.Amenities)
	}

	for i, img := range input.Images {
		enc.file(ctx, "images", fmt.Sprintf("image %d", i+1), img, "")
	}
	if input.Documents != nil {
		enc.file(ctx, "documents", "document", *input.Documents, documentContentType)
	}

	if enc.err == nil {
		enc.err = enc.w.Close()
	}
	if enc.err != nil {
		return nil, enc.err
	}

	return &EncodedRequestBody{
		ContentType: enc.w.FormDataContentType(),
		Body:        buf.Bytes(),
		Fields:      enc.fields,
	}, nil
}

// formEncoder writes form parts and keeps the first error it hits
type formEncoder struct {
	w      *multipart.Writer
	files  FileOpener
	fields []string
	err    error
}

func (e *formEncoder) field(name, value string) {
	if e.err != nil {
		return
	}
	if e.err = e.w.WriteField(name, value); e.err == nil {
		e.fields = append(e.fields, name)
	}
}

func (e *formEncoder) text(name, value string) {
	e.field(name, strings.TrimSpace(value))
}

func (e *formEncoder) optionalText(name, value string) {
	if strings.TrimSpace(value) != "" {
		e.text(name, value)
	}
}

func (e *formEncoder) number(name string, value models.Numeric) {
	if e.err != nil {
		return
	}
	n, err := value.Float64()
	if err != nil {
		e.err = apperrors.NewValidationError(fmt.Sprintf("%s must be a valid number", name))
		return
	}
	e.field(name, strconv.FormatFloat(n, 'f', -1, 64))
}

func (e *formEncoder) optionalNumber(name string, value models.Numeric) {
	if value.IsSet() {
		e.number(name, value)
	}
}

func (e *formEncoder) dateTime(name, value string) {
	if e.err != nil {
		return
	}
	t, err := validators.ParseDateTime(value)
	if err != nil {
		e.err = apperrors.NewValidationError(fmt.Sprintf("%s must be a valid date", name))
		return
	}
	e.field(name, t.UTC().Format(auctionTimeLayout))
}

func (e *formEncoder) list(name string, values []string) {
	if e.err != nil {
		return
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		e.err = err
		return
	}
	e.field(name, string(encoded))
}

func (e *formEncoder) file(ctx context.Context, name, label string, ref models.FileRef, defaultType string) {
	if e.err != nil {
		return
	}

	data, err := e.read(ctx, ref.URI)
	if err != nil {
		msg := fmt.Sprintf("%s could not be read", label)
		e.err = apperrors.NewAppError(apperrors.ErrValidation, fmt.Sprintf("%s: %v", msg, err), msg, apperrors.ErrCodeValidation, 0, err)
		return
	}

	contentType := strings.TrimSpace(ref.Type)
	if contentType == "" {
		contentType = defaultType
	}
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	filename := strings.TrimSpace(ref.Name)
	if filename == "" {
		filename = fileName(ref.URI)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(name), escapeQuotes(filename)))
	h.Set("Content-Type", contentType)

	part, err := e.w.CreatePart(h)
	if err != nil {
		e.err = err
		return
	}
	if _, err := part.Write(data); err != nil {
		e.err = err
		return
	}
	e.fields = append(e.fields, name)
}

func (e *formEncoder) read(ctx context.Context, uri string) ([]byte, error) {
	rc, err := e.files.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
