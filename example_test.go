package taskrun_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/Andrej220/go-utils/taskrun"
)

func ExampleRun() {
	tasks := []taskrun.Task{
		taskrun.Value("cached"),
		taskrun.Func(func(stop taskrun.StopFunc) (any, error) {
			return "computed", nil
		}),
		taskrun.Func(func(stop taskrun.StopFunc) (any, error) {
			return nil, errors.New("unreachable backend")
		}),
	}

	rep, err := taskrun.Run(context.Background(), tasks, taskrun.Options{Concurrency: 2})
	if err != nil {
		fmt.Println("run:", err)
		return
	}
	fmt.Println(rep.Resolved)
	fmt.Println(rep.Rejected)
	// Output:
	// [cached computed]
	// [unreachable backend]
}

func ExampleStopFunc() {
	tasks := []taskrun.Task{
		taskrun.Func(func(stop taskrun.StopFunc) (any, error) {
			// Give up on the whole batch and fail this task with a reason.
			stop("quota exhausted")
			return nil, nil
		}),
		taskrun.Func(func(stop taskrun.StopFunc) (any, error) {
			return "never started", nil
		}),
	}

	rep, _ := taskrun.Run(context.Background(), tasks, taskrun.Options{Concurrency: 1})
	fmt.Println(rep.Rejected)
	// Output: [quota exhausted]
}
