// Package aws provides the AWS-backed external collaborators used during
// resolution: the availability zone directory (EC2) and the node image
// catalog (EKS optimized-AMI parameters in SSM).
//
// The resolver memoizes lookups per run; this package only adds transport,
// client caching, and retry policy for transient failures.
package aws
