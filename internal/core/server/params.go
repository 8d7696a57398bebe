package server

import (
	"math"
	"strconv"
	"strings"

	"warehouse-gateway/internal/core/config"
	"warehouse-gateway/internal/core/validation"

	"github.com/gofiber/fiber/v2"
)

// PaginationFrom reads page and limit from the query string.
// Missing, zero or non-numeric values take the configured defaults;
// fractional numbers are recorded in errs.
func PaginationFrom(c *fiber.Ctx, defaults config.PaginationConfig, errs validation.Errors) validation.Pagination {
	return validation.Pagination{
		Page:  pageParam(c.Query("page"), defaults.Page, "page", "Page must be a positive integer", errs),
		Limit: pageParam(c.Query("limit"), defaults.Limit, "limit", "Limit must be a positive integer", errs),
	}
}

// OptionalInt reads an optional identifier filter. Absent yields 0;
// a present value that is not a number or is below 1 is recorded in errs.
func OptionalInt(c *fiber.Ctx, key, msg string, errs validation.Errors) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(key, msg)
		return 0
	}
	if n < 1 {
		errs.Add(key, key+" must be at least 1")
		return 0
	}
	return n
}

// ParseBody decodes the JSON body into out, reporting malformed input as a validation error.
func ParseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		errs := validation.Errors{}
		errs.Add("body", "Invalid request body")
		return errs.Err()
	}
	return nil
}

func pageParam(raw string, fallback int, key, msg string, errs validation.Errors) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		if n == 0 {
			return fallback
		}
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return fallback
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		errs.Add(key, msg)
		return 0
	}
	if f == 0 {
		return fallback
	}
	return int(f)
}
