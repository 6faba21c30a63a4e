package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/ssmiface"
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
)

// An ImageCatalog looks up EKS optimized node images from the public SSM
// parameters. It implements resolve.ImageCatalog.
type ImageCatalog struct {
	// Region the SSM parameters are read from. If not set, the default
	// region from the environment is used.
	Region string

	// Backoff is the backoff algorithm used for retrying transient
	// failures. If not set, exponential backoff is used.
	Backoff func() backoff.BackOff

	once sync.Once
	svc  ssmiface.ClientAPI
	err  error
}

// LookupImage returns the recommended image identifier for a Kubernetes
// version and architecture.
func (c *ImageCatalog) LookupImage(ctx context.Context, kubernetesVersion, architecture string) (string, error) {
	name, err := amiParameterName(kubernetesVersion, architecture)
	if err != nil {
		return "", backoff.Permanent(err)
	}

	svc, err := c.service()
	if err != nil {
		return "", err
	}

	input := &ssm.GetParameterInput{
		Name: aws.String(name),
	}

	var image string
	op := func() error {
		resp, err := svc.GetParameterRequest(input).Send(ctx)
		if err != nil {
			return handleGetError(err)
		}
		if resp.Parameter == nil || resp.Parameter.Value == nil {
			return backoff.Permanent(errors.Errorf("no value for parameter %s", name))
		}
		image = *resp.Parameter.Value
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(c.algo(), ctx)); err != nil {
		return "", err
	}
	return image, nil
}

func (c *ImageCatalog) algo() backoff.BackOff {
	if c.Backoff != nil {
		return c.Backoff()
	}
	return backoff.NewExponentialBackOff()
}

// amiParameterName returns the SSM parameter path for the recommended EKS
// optimized image for a version/architecture pair.
func amiParameterName(kubernetesVersion, architecture string) (string, error) {
	if kubernetesVersion == "" {
		return "", errors.New("kubernetes version not set")
	}
	var flavor string
	switch architecture {
	case "", "x86_64", "amd64":
		flavor = "amazon-linux-2"
	case "arm64", "aarch64":
		flavor = "amazon-linux-2-arm64"
	default:
		return "", errors.Errorf("unsupported architecture %q", architecture)
	}
	return fmt.Sprintf("/aws/service/eks/optimized-ami/%s/%s/recommended/image_id", kubernetesVersion, flavor), nil
}

func (c *ImageCatalog) service() (ssmiface.ClientAPI, error) {
	c.once.Do(func() {
		region := c.Region
		if region == "" {
			region = defaultRegion()
		}
		cfg, err := awsConfig(region)
		if err != nil {
			c.err = err
			return
		}
		c.svc = ssm.New(cfg)
	})
	return c.svc, c.err
}
