package aws

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/ec2iface"
	"github.com/cenkalti/backoff"
)

// A ZoneDirectory lists availability zones using the EC2 API. It implements
// resolve.ZoneDirectory.
//
// Clients are created per region on first use and reused for the lifetime
// of the directory. The zero value is ready to use.
type ZoneDirectory struct {
	// Backoff is the backoff algorithm used for retrying transient
	// failures. If not set, exponential backoff is used.
	Backoff func() backoff.BackOff

	mu      sync.Mutex
	clients map[string]ec2iface.ClientAPI
}

// ListAvailabilityZones returns the names of the available zones in a
// region, in the order the provider reports them.
func (d *ZoneDirectory) ListAvailabilityZones(ctx context.Context, region string) ([]string, error) {
	svc, err := d.service(region)
	if err != nil {
		return nil, err
	}

	input := &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2.Filter{{
			Name:   aws.String("state"),
			Values: []string{"available"},
		}},
	}

	var zones []string
	op := func() error {
		resp, err := svc.DescribeAvailabilityZonesRequest(input).Send(ctx)
		if err != nil {
			return handleGetError(err)
		}
		zones = zones[:0]
		for _, z := range resp.AvailabilityZones {
			zones = append(zones, aws.StringValue(z.ZoneName))
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(d.algo(), ctx)); err != nil {
		return nil, err
	}
	return zones, nil
}

func (d *ZoneDirectory) algo() backoff.BackOff {
	if d.Backoff != nil {
		return d.Backoff()
	}
	return backoff.NewExponentialBackOff()
}

func (d *ZoneDirectory) service(region string) (ec2iface.ClientAPI, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if svc, ok := d.clients[region]; ok {
		return svc, nil
	}
	cfg, err := awsConfig(region)
	if err != nil {
		return nil, err
	}
	svc := ec2.New(cfg)
	if d.clients == nil {
		d.clients = make(map[string]ec2iface.ClientAPI)
	}
	d.clients[region] = svc
	return svc, nil
}
