package controller

import "github.com/labstack/echo/v4"

type FarmController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	AddCrop(c echo.Context) error
	ListCrops(c echo.Context) error
	ReportHarvest(c echo.Context) error
}
