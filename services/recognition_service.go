package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type RecognitionService struct {
	client *rekognition.Client
}

func NewRecognitionService() (*RecognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RecognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// decodeImageDataURI strips the "data:<mime>;base64," head and decodes the
// payload. The head length varies with the mime type, so the split runs on
// the comma rather than a fixed offset. Only image/* URIs are accepted.
func decodeImageDataURI(uri string) ([]byte, error) {
	head, payload, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(head, "data:image") {
		return nil, errors.New("invalid image data URI")
	}
	return base64.StdEncoding.DecodeString(payload)
}

// RecognizeLabels returns the top labels for a base64-encoded image
func (r *RecognitionService) RecognizeLabels(base64Img string) ([]string, error) {
	data, err := decodeImageDataURI(base64Img)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}
