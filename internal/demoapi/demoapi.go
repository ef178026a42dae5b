// Package demoapi provides the example API served by cmd/tsgen so the
// generation pipeline has a real OpenAPI document to work with.
package demoapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/apibridge/tsgen/internal/devserver"
)

// Task is the demo resource.
type Task struct {
	ID    string `json:"id" doc:"Task identifier"`
	Title string `json:"title" doc:"Short description"`
	Done  bool   `json:"done,omitempty" doc:"Completion flag"`
}

type listTasksOutput struct {
	Body struct {
		Tasks []Task `json:"tasks"`
	}
}

type getTaskInput struct {
	ID string `path:"id" doc:"Task identifier"`
}

type getTaskOutput struct {
	Body Task
}

// New builds the demo API with its operations registered.
func New(version string) (huma.API, *http.ServeMux) {
	api, mux := devserver.NewAPI("tsgen demo", version)

	tasks := []Task{
		{ID: "1", Title: "wire the generation hook", Done: true},
		{ID: "2", Title: "generate the TypeScript client"},
	}

	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/tasks",
		Summary:     "List tasks",
		Tags:        []string{"tasks"},
	}, func(_ context.Context, _ *struct{}) (*listTasksOutput, error) {
		out := &listTasksOutput{}
		out.Body.Tasks = tasks
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-task",
		Method:      http.MethodGet,
		Path:        "/tasks/{id}",
		Summary:     "Get a task",
		Tags:        []string{"tasks"},
	}, func(_ context.Context, input *getTaskInput) (*getTaskOutput, error) {
		for _, task := range tasks {
			if task.ID == input.ID {
				return &getTaskOutput{Body: task}, nil
			}
		}
		return nil, huma.Error404NotFound("task not found")
	})

	return api, mux
}
