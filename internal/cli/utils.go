package cli

import (
	"fmt"

	"github.com/videopick/videopick/internal/models"
)

func formatVideo(v models.Video) string {
	rating := "N/A"
	if v.Rating != nil {
		rating = fmt.Sprintf("%.1f", *v.Rating)
	}
	return fmt.Sprintf("%s  %4s  %s", v.ID, rating, v.Name)
}
