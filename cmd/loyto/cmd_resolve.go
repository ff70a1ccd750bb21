package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yairfalse/loyto/internal/config"
	"github.com/yairfalse/loyto/resolver"
)

var (
	resolveRegion     string
	resolveProfile    string
	resolveOutput     string
	resolveConfigPath string
	resolveDebug      bool
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <identifier>",
	Short: "Resolve an identifier to a running instance ID",
	Long: `Resolve an instance ID, IP address, DNS name, tag or Name tag
to the ID of the running EC2 instance it refers to.

An instance ID is echoed back without touching the API. Everything
else costs exactly one DescribeInstances call, always restricted to
running instances.`,
	Example: `  loyto resolve i-0abc123                 # Already an ID, echoed back
  loyto resolve 203.0.113.5               # Public IP
  loyto resolve 10.0.0.5                  # Private IP
  loyto resolve env:prod                  # Tag
  loyto resolve webserver01               # Name tag
  loyto resolve webserver01 -o json       # JSON output for scripts`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveRegion, "region", "r", "", "AWS region (overrides config file)")
	resolveCmd.Flags().StringVarP(&resolveProfile, "profile", "p", "", "AWS shared config profile")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "plain", "Output format: plain, json")
	resolveCmd.Flags().StringVarP(&resolveConfigPath, "config", "c", "", "Path to TOML config file")
	resolveCmd.Flags().BoolVar(&resolveDebug, "debug", false, "Enable debug logging")
}

func runResolve(cmd *cobra.Command, args []string) error {
	identifier := args[0]

	if resolveOutput != "plain" && resolveOutput != "json" {
		return fmt.Errorf("invalid output format: %s (must be plain or json)", resolveOutput)
	}

	cfg, err := loadConfig(resolveConfigPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log.Level, resolveDebug)

	region := cfg.AWS.Region
	if resolveRegion != "" {
		region = resolveRegion
	}
	profile := cfg.AWS.Profile
	if resolveProfile != "" {
		profile = resolveProfile
	}

	ctx := cmd.Context()

	client, err := newEC2Client(ctx, region, profile)
	if err != nil {
		return err
	}

	res, err := resolver.New(client, resolver.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Debug().
		Str("identifier", identifier).
		Str("region", region).
		Msg("resolving")

	instanceID, err := res.Resolve(ctx, identifier)
	if err != nil {
		return err
	}

	return printResult(os.Stdout, identifier, instanceID, resolveOutput)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(level string, debug bool) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	if debug {
		logLevel = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().
		Timestamp().
		Logger()
}

// newEC2Client builds the authenticated client the resolver depends on.
// Credential resolution follows the usual AWS chain.
func newEC2Client(ctx context.Context, region, profile string) (*ec2.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return ec2.NewFromConfig(awsCfg), nil
}

// resolveResult is the JSON output shape.
type resolveResult struct {
	Identifier string `json:"identifier"`
	InstanceID string `json:"instance_id,omitempty"`
	Found      bool   `json:"found"`
}

func printResult(w io.Writer, identifier, instanceID, format string) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(resolveResult{
			Identifier: identifier,
			InstanceID: instanceID,
			Found:      instanceID != "",
		})
	}

	if instanceID == "" {
		return fmt.Errorf("no running instance found for %q", identifier)
	}

	fmt.Fprintln(w, instanceID)
	return nil
}
