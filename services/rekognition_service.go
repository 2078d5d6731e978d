package services

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Classifier labels a meal photo. Satisfied by RekognitionService in
// production and by stubs in tests.
type Classifier interface {
	ClassifyFood(imageData []byte) (label string, confidence float64, err error)
}

// RekognitionService wraps the image classifier. It is constructed once at
// startup and injected wherever classification is needed; the client is
// read-only after construction.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// ClassifyFood returns the top label for an image and its confidence scaled
// to 0..1. Classifier failures are returned verbatim; there is no retry here.
func (r *RekognitionService) ClassifyFood(imageData []byte) (string, float64, error) {
	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: imageData},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(50),
	})
	if err != nil {
		return "", 0, err
	}
	if len(out.Labels) == 0 {
		return "", 0, errors.New("no labels detected")
	}

	top := out.Labels[0]
	label := strings.ToLower(strings.TrimSpace(aws.ToString(top.Name)))
	confidence := float64(aws.ToFloat32(top.Confidence)) / 100

	return label, confidence, nil
}
