package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/aws-cost-alert-go/internal/domain/repository"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment variables read at startup, keyed by config field.
var envBindings = map[string][]string{
	"threshold_amount": {"THRESHOLD_AMOUNT"},
	"sns_topic_arn":    {"SNS_TOPIC_ARN"},
	"region":           {"AWS_REGION", "AWS_DEFAULT_REGION"},
	"profile":          {"AWS_PROFILE"},
	"max_services":     {"NUM_SERVICES_TO_REPORT"},
	"concurrency":      {"COST_ALERT_CONCURRENCY"},
	"dry_run":          {"COST_ALERT_DRY_RUN"},
	"accounts":         {"COST_ALERT_ACCOUNTS"},
	"report_bucket":    {"REPORT_BUCKET"},
}

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// ResolveConfig monta a configuração da execução.
//
// Ordem de precedência (a última vence): valores padrão, arquivo de
// configuração, arquivo .env, variáveis de ambiente e flags da linha de comando.
func (r *ConfigRepositoryImpl) ResolveConfig(args *types.CLIArgs) (*types.Config, error) {
	if args == nil {
		args = &types.CLIArgs{}
	}

	cfg := &types.Config{
		Region:      types.DefaultRegion,
		MaxServices: types.DefaultMaxServices,
		Concurrency: types.DefaultConcurrency,
		ReportType:  []string{types.DefaultReportType},
	}

	if args.ConfigFile != "" {
		fileCfg, err := r.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(cfg, fileCfg)
	}

	if args.EnvFile != "" {
		if err := godotenv.Load(args.EnvFile); err != nil {
			return nil, fmt.Errorf("error loading env file %s: %w", args.EnvFile, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := applyArgs(cfg, args); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration before any account is processed.
func Validate(cfg *types.Config) error {
	if cfg.Threshold == nil {
		return types.ErrMissingThreshold
	}
	if *cfg.Threshold < 0 {
		return fmt.Errorf("%w: %v", types.ErrInvalidThreshold, *cfg.Threshold)
	}
	if cfg.TopicARN == "" && !cfg.DryRun {
		return types.ErrMissingTopicARN
	}
	if cfg.MaxServices < 1 {
		return fmt.Errorf("%w: %d", types.ErrInvalidMaxServices, cfg.MaxServices)
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("%w: %d", types.ErrInvalidConcurrency, cfg.Concurrency)
	}
	return nil
}

func mergeConfig(dst, src *types.Config) {
	if src.Threshold != nil {
		dst.Threshold = src.Threshold
	}
	if src.TopicARN != "" {
		dst.TopicARN = src.TopicARN
	}
	if src.Region != "" {
		dst.Region = src.Region
	}
	if src.Profile != "" {
		dst.Profile = src.Profile
	}
	if src.MaxServices != 0 {
		dst.MaxServices = src.MaxServices
	}
	if src.Concurrency != 0 {
		dst.Concurrency = src.Concurrency
	}
	if len(src.Accounts) > 0 {
		dst.Accounts = src.Accounts
	}
	if src.DryRun {
		dst.DryRun = true
	}
	if src.ReportName != "" {
		dst.ReportName = src.ReportName
	}
	if len(src.ReportType) > 0 {
		dst.ReportType = src.ReportType
	}
	if src.Dir != "" {
		dst.Dir = src.Dir
	}
	if src.ReportBucket != "" {
		dst.ReportBucket = src.ReportBucket
	}
}

// applyEnv reads the environment through viper. Numbers are parsed here
// instead of with viper's GetFloat64/GetInt, which return zero on bad input.
func applyEnv(cfg *types.Config) error {
	v := viper.New()
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("error binding environment for %s: %w", key, err)
		}
	}

	if v.IsSet("threshold_amount") {
		threshold, err := ParseThreshold(v.GetString("threshold_amount"))
		if err != nil {
			return err
		}
		cfg.Threshold = &threshold
	}
	if s := v.GetString("sns_topic_arn"); s != "" {
		cfg.TopicARN = s
	}
	if s := v.GetString("region"); s != "" {
		cfg.Region = s
	}
	if s := v.GetString("profile"); s != "" {
		cfg.Profile = s
	}
	if v.IsSet("max_services") {
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString("max_services")))
		if err != nil {
			return fmt.Errorf("%w: %v", types.ErrInvalidMaxServices, err)
		}
		cfg.MaxServices = n
	}
	if v.IsSet("concurrency") {
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString("concurrency")))
		if err != nil {
			return fmt.Errorf("%w: %v", types.ErrInvalidConcurrency, err)
		}
		cfg.Concurrency = n
	}
	if v.IsSet("dry_run") {
		dryRun, err := strconv.ParseBool(strings.TrimSpace(v.GetString("dry_run")))
		if err != nil {
			return fmt.Errorf("invalid COST_ALERT_DRY_RUN value: %w", err)
		}
		cfg.DryRun = dryRun
	}
	if s := v.GetString("accounts"); s != "" {
		cfg.Accounts = splitList(s)
	}
	if s := v.GetString("report_bucket"); s != "" {
		cfg.ReportBucket = s
	}
	return nil
}

func applyArgs(cfg *types.Config, args *types.CLIArgs) error {
	if args.Threshold != nil {
		threshold, err := ParseThreshold(*args.Threshold)
		if err != nil {
			return err
		}
		cfg.Threshold = &threshold
	}
	if args.TopicARN != "" {
		cfg.TopicARN = args.TopicARN
	}
	if args.Region != "" {
		cfg.Region = args.Region
	}
	if args.Profile != "" {
		cfg.Profile = args.Profile
	}
	if args.MaxServices != nil {
		cfg.MaxServices = *args.MaxServices
	}
	if args.Concurrency != nil {
		cfg.Concurrency = *args.Concurrency
	}
	if len(args.Accounts) > 0 {
		cfg.Accounts = args.Accounts
	}
	if args.DryRun != nil {
		cfg.DryRun = *args.DryRun
	}
	if args.ReportName != "" {
		cfg.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return err
		}
		cfg.Dir = absDir
	}
	if args.ReportBucket != "" {
		cfg.ReportBucket = args.ReportBucket
	}
	return nil
}

// ParseThreshold parses a decimal threshold amount.
func ParseThreshold(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, types.ErrMissingThreshold
	}
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidThreshold, raw)
	}
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidThreshold, raw)
	}
	return threshold, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
