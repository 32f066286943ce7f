package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "ExpertRohr Web",
    "description": "Contact form relay and Google reviews proxy for the ExpertRohr marketing site",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/send-email": {
      "post": {
        "tags": ["contact"],
        "summary": "Submit contact form",
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [
          {"in": "body", "name": "submission", "required": true, "schema": {"$ref": "#/definitions/models.Submission"}}
        ],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SendEmailResponse"}},
          "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.SendEmailResponse"}},
          "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.SendEmailResponse"}}
        }
      }
    },
    "/api/reviews": {
      "get": {
        "tags": ["reviews"],
        "summary": "Google reviews",
        "produces": ["application/json"],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ReviewSummary"}},
          "500": {"description": "Internal Server Error", "schema": {"type": "object"}}
        }
      }
    }
  },
  "definitions": {
    "models.Submission": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "phone": {"type": "string"},
        "email": {"type": "string"},
        "address": {"type": "string"},
        "problem": {"type": "string"},
        "urgent": {"type": "boolean"}
      }
    },
    "handlers.SendEmailResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "message": {"type": "string"}
      }
    },
    "models.ReviewEntry": {
      "type": "object",
      "properties": {
        "author_name": {"type": "string"},
        "rating": {"type": "integer"},
        "text": {"type": "string"},
        "relative_time": {"type": "string"},
        "profile_photo_url": {"type": "string"}
      }
    },
    "models.ReviewSummary": {
      "type": "object",
      "properties": {
        "rating": {"type": "number"},
        "total_ratings": {"type": "integer"},
        "reviews": {"type": "array", "items": {"$ref": "#/definitions/models.ReviewEntry"}}
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
