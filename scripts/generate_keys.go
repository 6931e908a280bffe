//go:build ignore

// This script generates secrets for API key and operator token authentication.
// Run with: go run scripts/generate_keys.go [-operator name]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	operator := flag.String("operator", "", "also print an operator token for this subject")
	ttl := flag.Duration("ttl", 8*time.Hour, "lifetime of the operator token")
	flag.Parse()

	fmt.Println("=== Drone Fulfillment Key Generator ===")
	fmt.Println()

	// 32 bytes = 256 bits for HS256
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Printf("API_KEYS=%s\n", apiKey)

	if *operator != "" {
		now := time.Now()
		claims := jwt.MapClaims{
			"sub":   *operator,
			"roles": []string{"operator"},
			"iss":   "drone-fulfillment",
			"iat":   now.Unix(),
			"nbf":   now.Unix(),
			"exp":   now.Add(*ttl).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error signing operator token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Printf("# Operator token for %q, valid for %s\n", *operator, *ttl)
		fmt.Printf("Authorization: Bearer %s\n", token)
	}

	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
