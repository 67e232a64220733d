package service

import (
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/stayhub-app/rating-service/internal/domain"
)

var (
	ErrUnauthorized     = errors.New("you don't have access to this action")
	ErrRatingNotFound   = errors.New("rating not found")
	ErrRatingValidation = errors.New("rating validation failed")
)

func validateRating(rating int) error {
	if rating < domain.RatingMin || rating > domain.RatingMax {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrRatingValidation, domain.RatingMin, domain.RatingMax)
	}
	return nil
}

func validateComment(comment string) error {
	if utf8.RuneCountInString(comment) > domain.CommentMaxLength {
		return fmt.Errorf("%w: comment must be at most %d characters", ErrRatingValidation, domain.CommentMaxLength)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
