//go:build ignore

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/place-microservice/internal/delivery/http/middleware"
	"github.com/place-microservice/internal/domain"
)

// Скрипт для ручной проверки: подписывает dev-токен и добавляет
// несколько мест через POST /add.
func main() {
	apiURL := flag.String("api", "http://localhost:8080", "API base URL")
	secret := flag.String("secret", "dev-secret", "JWT secret (must match JWT_SECRET)")
	userID := flag.Int64("user", 1, "user id claim")
	flag.Parse()

	token, err := middleware.GenerateToken(*secret, &domain.Identity{
		ID:       *userID,
		Username: "seed",
	}, time.Hour)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	seeds := []struct {
		lat, lon float64
		tags     string
	}{
		{41.3851, 2.1734, "shoreline,sand"},
		{41.3902, 2.1540, "toilet,paid_entry"},
		{41.4036, 2.1744, "water_source,mobile_signal"},
		{41.3809, 2.1896, "fishing_spot,stone"},
	}

	client := &http.Client{Timeout: 10 * time.Second}
	for _, s := range seeds {
		q := url.Values{}
		q.Set("latitude", fmt.Sprintf("%f", s.lat))
		q.Set("longitude", fmt.Sprintf("%f", s.lon))
		q.Set("tags", s.tags)

		req, err := http.NewRequest(http.MethodPost, *apiURL+"/add?"+q.Encode(), nil)
		if err != nil {
			log.Fatalf("failed to build request: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("request failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		log.Printf("POST /add (%.4f, %.4f) -> %d %s", s.lat, s.lon, resp.StatusCode, string(body))
	}
}
