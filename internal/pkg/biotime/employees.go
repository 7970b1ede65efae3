package biotime

import (
	"context"
	"net/url"
	"strconv"
)

const employeesPath = "/personnel/api/employees/"

// fetchAllEmployeePageSize is the page size used when draining the roster.
const fetchAllEmployeePageSize = 1000

// Employee is a roster record as returned by the upstream personnel API.
type Employee struct {
	EmpCode    string      `json:"emp_code"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Department *Department `json:"department"`
}

// Department is the nested structure the upstream uses for an employee's
// department assignment.
type Department struct {
	DeptName string `json:"dept_name"`
}

// DepartmentName returns the nested department name, or nil when the
// employee has no department assigned.
func (e Employee) DepartmentName() *string {
	if e.Department == nil || e.Department.DeptName == "" {
		return nil
	}
	name := e.Department.DeptName
	return &name
}

// ListEmployees fetches a single page of the employee roster.
func (c *Client) ListEmployees(ctx context.Context, page, pageSize int) (Page[Employee], error) {
	query := url.Values{
		"page":      []string{strconv.Itoa(page)},
		"page_size": []string{strconv.Itoa(pageSize)},
	}

	var result Page[Employee]
	if err := c.getJSON(ctx, employeesPath, query, employeeTimeout, &result); err != nil {
		return Page[Employee]{}, err
	}
	return result, nil
}

// FetchAllEmployees walks roster pages until the upstream signals the end.
func (c *Client) FetchAllEmployees(ctx context.Context) ([]Employee, error) {
	return collectAll(ctx, func(ctx context.Context, page int) (Page[Employee], error) {
		return c.ListEmployees(ctx, page, fetchAllEmployeePageSize)
	})
}
