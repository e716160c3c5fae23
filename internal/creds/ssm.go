// Package creds pulls the database login out of AWS SSM Parameter Store so
// it never lives in config files or the environment.
package creds

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/config"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
)

// Fetch retrieves the database username and password. Requires an active AWS
// session on the machine; without one the whole run is a non-starter.
func Fetch(cfg *config.Config) (username, password string, err error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
	})
	if err != nil {
		return "", "", errs.Upstream("you are not logged into AWS")
	}

	out, err := ssm.New(sess).GetParameters(&ssm.GetParametersInput{
		Names: []*string{
			aws.String(cfg.AWS.UsernameParam),
			aws.String(cfg.AWS.PasswordParam),
		},
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", "", errs.Upstream("you are not logged into AWS")
	}

	for _, p := range out.Parameters {
		switch aws.StringValue(p.Name) {
		case cfg.AWS.UsernameParam:
			username = aws.StringValue(p.Value)
		case cfg.AWS.PasswordParam:
			password = aws.StringValue(p.Value)
		}
	}

	if username == "" || password == "" {
		return "", "", fmt.Errorf("%w: database credentials missing from parameter store", errs.ErrUpstreamRejected)
	}
	return username, password, nil
}
