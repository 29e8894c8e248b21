package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/saulo-duarte/questlog-lambda/internal/container"
	"github.com/saulo-duarte/questlog-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func buildRouter() *chi.Mux {
	c := container.New()

	return router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		QuizSetHandler:   c.QuizSetContainer.Handler,
		SessionHandler:   c.SessionContainer.Handler,
		AttemptHandler:   c.AttemptContainer.Handler,
		CharacterHandler: c.CharacterContainer.Handler,
		CommunityHandler: c.CommunityContainer.Handler,
	})
}

func lambdaHandler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	_ = godotenv.Load()

	r := buildRouter()

	// Fora do Lambda (desenvolvimento local), sobe um servidor HTTP comum.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		if err := http.ListenAndServe(":"+port, r); err != nil {
			panic(err)
		}
		return
	}

	chiLambda = chiadapter.New(r)
	lambda.Start(lambdaHandler)
}
