package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Serve Lex fulfillment events in the AWS Lambda runtime",
	Run: func(_ *cobra.Command, _ []string) {
		serveLambda()
	},
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}

func serveLambda() {
	logger, config := setup()

	router, err := newRouter(config, logger)
	if err != nil {
		logger.Fatal("building the router", zap.Error(err))
	}

	logger.Info("starting the lambda handler",
		zap.String("version", version),
		zap.String("api_url", config.API.URL),
	)

	lambda.Start(router.Handle)
}
