// @title           prompt-builder API
// @version         1.0
// @description     Substitute annotation field values into prompt templates.
// @BasePath        /api/v1
package api
