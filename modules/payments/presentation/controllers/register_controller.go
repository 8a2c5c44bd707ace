package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/deskflow/deskflow/modules/payments/services"
	"github.com/deskflow/deskflow/pkg/composables"
)

type RegisterRowResponse struct {
	Contract string `json:"contract"`
	Planned  string `json:"planned"`
	Actual   string `json:"actual"`
}

type RegisterGroupResponse struct {
	Counterparty string                `json:"counterparty"`
	Rows         []RegisterRowResponse `json:"rows"`
	PlannedTotal string                `json:"plannedTotal"`
	ActualTotal  string                `json:"actualTotal"`
}

type RegisterResponse struct {
	Groups       []RegisterGroupResponse `json:"groups"`
	PlannedTotal string                  `json:"plannedTotal"`
	ActualTotal  string                  `json:"actualTotal"`
}

type RegisterController struct {
	svc *services.RegisterService
}

func NewRegisterController(svc *services.RegisterService) *RegisterController {
	return &RegisterController{svc: svc}
}

func (c *RegisterController) Key() string {
	return "/payments/register"
}

func (c *RegisterController) Register(r *mux.Router) {
	r.HandleFunc("/payments/register", c.Get).Methods(http.MethodGet)
	r.HandleFunc("/payments/register/export", c.Export).Methods(http.MethodGet)
}

func requestLogger(r *http.Request) *logrus.Entry {
	if entry, err := composables.UseLogger(r.Context()); err == nil {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func (c *RegisterController) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.UseUserID(r.Context()); err != nil {
		http.Error(w, "user identity required", http.StatusUnauthorized)
		return
	}
	reg, err := c.svc.Register(r.Context())
	if err != nil {
		requestLogger(r).WithError(err).Error("failed to build payment register")
		http.Error(w, "failed to build register", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toRegisterResponse(reg)); err != nil {
		panic(err)
	}
}

func (c *RegisterController) Export(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.UseUserID(r.Context()); err != nil {
		http.Error(w, "user identity required", http.StatusUnauthorized)
		return
	}
	reg, err := c.svc.Register(r.Context())
	if err != nil {
		requestLogger(r).WithError(err).Error("failed to build payment register")
		http.Error(w, "failed to build register", http.StatusInternalServerError)
		return
	}

	f, err := registerWorkbook(reg)
	if err != nil {
		requestLogger(r).WithError(err).Error("failed to render register workbook")
		http.Error(w, "failed to render workbook", http.StatusInternalServerError)
		return
	}
	defer func() {
		_ = f.Close()
	}()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="payment-register.xlsx"`)
	if err := f.Write(w); err != nil {
		requestLogger(r).WithError(err).Error("failed to write register workbook")
	}
}

func registerWorkbook(reg *services.Register) (*excelize.File, error) {
	const sheet = "Register"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	setRow := func(row int, values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	if err := setRow(1, "Counterparty", "Contract", "Planned", "Actual"); err != nil {
		return nil, err
	}
	row := 2
	for _, group := range reg.Groups {
		for _, line := range group.Rows {
			planned, _ := line.Planned.Float64()
			actual, _ := line.Actual.Float64()
			if err := setRow(row, group.Counterparty, line.Contract, planned, actual); err != nil {
				return nil, err
			}
			row++
		}
		planned, _ := group.PlannedTotal.Float64()
		actual, _ := group.ActualTotal.Float64()
		if err := setRow(row, fmt.Sprintf("%s total", group.Counterparty), "", planned, actual); err != nil {
			return nil, err
		}
		row++
	}
	planned, _ := reg.PlannedTotal.Float64()
	actual, _ := reg.ActualTotal.Float64()
	if err := setRow(row, "Grand total", "", planned, actual); err != nil {
		return nil, err
	}
	return f, nil
}

func toRegisterResponse(reg *services.Register) RegisterResponse {
	out := RegisterResponse{
		Groups:       make([]RegisterGroupResponse, 0, len(reg.Groups)),
		PlannedTotal: reg.PlannedTotal.String(),
		ActualTotal:  reg.ActualTotal.String(),
	}
	for _, group := range reg.Groups {
		groupOut := RegisterGroupResponse{
			Counterparty: group.Counterparty,
			Rows:         make([]RegisterRowResponse, 0, len(group.Rows)),
			PlannedTotal: group.PlannedTotal.String(),
			ActualTotal:  group.ActualTotal.String(),
		}
		for _, line := range group.Rows {
			groupOut.Rows = append(groupOut.Rows, RegisterRowResponse{
				Contract: line.Contract,
				Planned:  line.Planned.String(),
				Actual:   line.Actual.String(),
			})
		}
		out.Groups = append(out.Groups, groupOut)
	}
	return out
}
