package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	token   string
	timeout time.Duration

	// Swappable for tests.
	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smarthisab-cli",
		Short: "SmartHisab CLI tool",
		Long:  `A command line interface for operating a SmartHisab deployment.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the SmartHisab API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server readiness",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Fetch the owner dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			fetchDashboard()
		},
	}
}

// hashPasswordCmd bcrypt-hashes a password or portal code, for seeding
// admin accounts directly in the database.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for manual database seeding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func checkHealth() {
	body, status := get("/ready")
	if status != http.StatusOK {
		fmt.Printf("Readiness check FAILED (Status: %d)\nResponse: %s\n", status, truncate(string(body), 200))
		os.Exit(1)
	}

	fmt.Println("Readiness check PASSED")
}

func fetchDashboard() {
	body, status := get("/api/v1/analytics/dashboard")
	if status != http.StatusOK {
		fmt.Printf("Dashboard request FAILED (Status: %d)\nResponse: %s\n", status, truncate(string(body), 200))
		os.Exit(1)
	}

	var stats map[string]any
	if err := json.Unmarshal(body, &stats); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(stats)
}

func get(path string) ([]byte, int) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
