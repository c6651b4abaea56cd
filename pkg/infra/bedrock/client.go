package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const (
	defaultRegion      = "us-east-1"
	defaultSessionName = "TrustPostModeration"
)

// Runtime is the slice of bedrockruntime used for text classification.
type Runtime interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
}

type Options struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
	RoleARN      string
	SessionName  string
}

// LoadConfig builds an AWS config from static keys, optionally exchanging
// them for role credentials through STS AssumeRole.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = defaultRegion
	}
	if opts.RoleARN == "" {
		return loadStatic(ctx, opts.AccessKey, opts.SecretKey, opts.SessionToken, region)
	}

	baseCfg, err := loadStatic(ctx, opts.AccessKey, opts.SecretKey, opts.SessionToken, region)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load base AWS config: %w", err)
	}
	sessionName := opts.SessionName
	if sessionName == "" {
		sessionName = defaultSessionName
	}
	out, err := sts.NewFromConfig(baseCfg).AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(opts.RoleARN),
		RoleSessionName: aws.String(sessionName),
	})
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to assume role: %w", err)
	}
	return loadStatic(ctx,
		aws.ToString(out.Credentials.AccessKeyId),
		aws.ToString(out.Credentials.SecretAccessKey),
		aws.ToString(out.Credentials.SessionToken),
		region,
	)
}

// NewRuntime returns a bedrockruntime client for the given credentials.
func NewRuntime(ctx context.Context, opts Options) (Runtime, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return bedrockruntime.NewFromConfig(cfg), nil
}

func loadStatic(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}
