package otfconvert

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-convert/internal/grading"
	"github.com/nsip/otf-convert/internal/units"
	"github.com/nsip/otf-convert/internal/util"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	msgInternalServerError = "Internal Server Error"
	msgMethodNotAllowed    = "Method not allowed"
	msgInvalidContentType  = "Invalid Content-Type. Expected: " + echo.MIMEApplicationJSON
)

type OtfConvertService struct {
	// embedded web server to handle grading requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// log level for the embedded server
	logLevel log.Lvl
	// catalog of valid units, read-only
	registry *units.Registry
	// grades submissions against the registry
	evaluator *grading.Evaluator
}

//
// create a new service instance
//
func New(options ...Option) (*OtfConvertService, error) {

	srvc := OtfConvertService{
		serviceHost: "localhost",
		logLevel:    defaultLogLevel(),
		registry:    units.Default(),
	}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}
	if err := srvc.setDefaults(); err != nil {
		return nil, err
	}
	srvc.evaluator = grading.NewEvaluator(srvc.registry)

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(srvc.logLevel)
	// unexpected panics become a 500, never a verdict
	srvc.e.Use(middleware.Recover())

	// add pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	// grade a student's conversion
	srvc.e.POST("/unit-conversion", srvc.buildGradeHandler())
	// plain conversion, no grading
	srvc.e.POST("/convert", srvc.buildConvertHandler())
	// unit catalog
	srvc.e.GET("/units", srvc.buildUnitsHandler())
	srvc.e.GET("/units/:family", srvc.buildFamilyHandler())

	notPost := []string{
		http.MethodGet, http.MethodHead, http.MethodPut,
		http.MethodDelete, http.MethodPatch, http.MethodOptions,
	}
	srvc.e.Match(notPost, "/unit-conversion", methodNotAllowed)
	srvc.e.Match(notPost, "/convert", methodNotAllowed)

	return &srvc, nil
}

// fill in identity and port for anything the options left blank
func (s *OtfConvertService) setDefaults() error {
	if s.serviceName == "" {
		s.serviceName = util.GenerateName()
	}
	if s.serviceID == "" {
		s.serviceID = util.GenerateID()
	}
	if s.servicePort == 0 {
		p, err := util.AvailablePort()
		if err != nil {
			return errors.Wrap(err, "unable to assign a port")
		}
		s.servicePort = p
	}
	return nil
}

//
// start the service running
//
func (s *OtfConvertService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			s.e.Logger.Info("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// creates the main grading method
// requires a json body with:
// value (or inputNumericalValue): the number to convert, as number or text
// fromUnit (or inputUnitOfMeasure): unit the value is in
// toUnit (or targetUnitOfMeasure): unit to convert to
// studentResponse: the student's answer, as number or text
//
// responds 200 for correct/incorrect, 400 for invalid and
// 500 for an unexpected failure.
//
func (s *OtfConvertService) buildGradeHandler() echo.HandlerFunc {

	evaluator := s.evaluator

	return func(c echo.Context) error {
		defer util.TimeTrack(c.Logger(), time.Now(), "grade")

		body, err := readJSON(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, message(err.Error()))
		}
		if !gjson.ValidBytes(body) {
			v := grading.Reject(errors.Wrap(grading.ErrMalformedInput, "request body is not valid json"))
			return c.JSON(http.StatusBadRequest, grading.ToResponse(v))
		}

		sub := grading.Submission{
			Value:           field(body, "value", "inputNumericalValue"),
			FromUnit:        field(body, "fromUnit", "inputUnitOfMeasure"),
			ToUnit:          field(body, "toUnit", "targetUnitOfMeasure"),
			StudentResponse: field(body, "studentResponse"),
		}

		verdict, err := evaluator.Grade(sub)
		if err != nil {
			c.Logger().Error("grading error: ", err)
			return c.JSON(http.StatusInternalServerError, message(msgInternalServerError))
		}

		status := http.StatusOK
		if verdict.Output == grading.Invalid {
			c.Logger().Debug("invalid submission: ", verdict.Reason)
			status = http.StatusBadRequest
		}
		return c.JSON(status, grading.ToResponse(verdict))
	}
}

//
// converts without grading
// takes the same fields as the grading method minus studentResponse
// and returns {convertedValue: n}, rounded to one decimal
//
func (s *OtfConvertService) buildConvertHandler() echo.HandlerFunc {

	evaluator := s.evaluator

	return func(c echo.Context) error {
		body, err := readJSON(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, message(err.Error()))
		}
		if !gjson.ValidBytes(body) {
			return c.JSON(http.StatusBadRequest, message("request body is not valid json"))
		}

		converted, err := evaluator.Convert(
			field(body, "value", "inputNumericalValue"),
			field(body, "fromUnit", "inputUnitOfMeasure"),
			field(body, "toUnit", "targetUnitOfMeasure"),
		)
		switch {
		case grading.IsInvalid(err):
			c.Logger().Debug("conversion not supported: ", err)
			return c.JSON(http.StatusBadRequest, message(grading.ConversionFailed+": "+err.Error()))
		case err != nil:
			c.Logger().Error("conversion error: ", err)
			return c.JSON(http.StatusInternalServerError, message(msgInternalServerError))
		}

		return c.JSON(http.StatusOK, map[string]interface{}{"convertedValue": converted})
	}
}

// unitView is the catalog entry shown to clients
type unitView struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

func (s *OtfConvertService) familyView(f units.Family) []unitView {
	members := s.registry.Units(f)
	out := make([]unitView, 0, len(members))
	for _, u := range members {
		out = append(out, unitView{Name: u.Name(), Symbol: u.Symbol(), Label: u.Label()})
	}
	return out
}

//
// lists every family with its units
//
func (s *OtfConvertService) buildUnitsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		catalog := make(map[string][]unitView)
		for _, f := range s.registry.Families() {
			catalog[f.String()] = s.familyView(f)
		}
		return c.JSON(http.StatusOK, catalog)
	}
}

//
// lists the units of a single family
//
func (s *OtfConvertService) buildFamilyHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		f, ok := s.registry.ParseFamily(c.Param("family"))
		if !ok {
			return c.JSON(http.StatusNotFound, message(fmt.Sprintf("unknown unit family %q", c.Param("family"))))
		}
		return c.JSON(http.StatusOK, s.familyView(f))
	}
}

func methodNotAllowed(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
	return c.JSON(http.StatusMethodNotAllowed, message(msgMethodNotAllowed))
}

func message(msg string) map[string]string {
	return map[string]string{"message": msg}
}

var errInvalidContentType = errors.New(msgInvalidContentType)

//
// checks the content type and returns the raw request body
//
func readJSON(c echo.Context) ([]byte, error) {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.Contains(ct, echo.MIMEApplicationJSON) {
		return nil, errInvalidContentType
	}
	body, err := ioutil.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read request body")
	}
	return body, nil
}

//
// returns the first of keys present in the json body as a plain go value
// (float64, string, bool, map...), or nil if none is present or all are null
//
func field(body []byte, keys ...string) interface{} {
	for _, k := range keys {
		r := gjson.GetBytes(body, k)
		if r.Exists() && r.Type != gjson.Null {
			return r.Value()
		}
	}
	return nil
}

//
// shut the server down gracefully
//
func (s *OtfConvertService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		fmt.Println("could not shut down server cleanly: ", err)
		s.e.Logger.Fatal(err)
	}

}

func (s *OtfConvertService) PrintConfig() {

	fmt.Println("\n\tOTF-Convert Service Configuration")
	fmt.Println("\t---------------------------------")
	fmt.Println()

	s.printID()
	s.printCatalog()

}

func (s *OtfConvertService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *OtfConvertService) printCatalog() {
	for _, f := range s.registry.Families() {
		names := []string{}
		for _, u := range s.registry.Units(f) {
			names = append(names, u.Name())
		}
		fmt.Printf("\t%s units:\t %s\n", f, strings.Join(names, ", "))
	}
}
