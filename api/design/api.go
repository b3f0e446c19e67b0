package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("vivopizza", func() {
	Title("Vivo Pizza Event Service API")
	Description("Backend API accepting event catering inquiries for Vivo Pizza")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Common error types
var ValidationFailed = Type("ValidationFailed", func() {
	Description("The inquiry violates one or more field constraints")
	Attribute("code", String, "Error code", func() {
		Example("validation_error")
	})
	Attribute("message", String, "Error message", func() {
		Example("invalid inquiry")
	})
	Attribute("fields", ArrayOf(FieldViolation), "Offending fields in declaration order")
	Required("code", "message", "fields")
})

var FieldViolation = Type("FieldViolation", func() {
	Attribute("field", String, "Field name", func() {
		Example("email")
	})
	Attribute("rule", String, "Violated constraint", func() {
		Enum("required", "min_length", "max_length", "minimum", "maximum", "format", "type")
	})
	Attribute("message", String, "Human readable description", func() {
		Example("must be a valid email address")
	})
	Required("field", "rule", "message")
})

var BadRequest = Type("BadRequest", func() {
	Description("Request body is missing or not valid JSON")
	Attribute("code", String, "Error code", func() {
		Example("invalid_request_body")
	})
	Attribute("message", String, "Error message", func() {
		Example("request body is not valid JSON")
	})
	Required("code", "message")
})

var StorageFailed = Type("StorageFailed", func() {
	Description("The document store rejected the inquiry")
	Attribute("code", String, "Error code", func() {
		Example("storage_error")
	})
	Attribute("message", String, "Error message", func() {
		Example("failed to store inquiry")
	})
	Attribute("detail", String, "Underlying cause", func() {
		MaxLength(200)
		Example("connection refused")
	})
	Required("code", "message")
})

// Health check
var _ = Service("health", func() {
	Description("Liveness and diagnostic endpoints")

	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/")
			GET("/health")
			Response(StatusOK)
		})
	})

	Method("diagnostic", func() {
		Result(DiagnosticResult)
		HTTP(func() {
			GET("/test")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("ok")
	})
	Attribute("service", String, "Service name", func() {
		Example("Vivo Pizza Event Service API")
	})
	Attribute("regions", ArrayOf(String), "Service regions")
	Required("status", "service", "regions")
})

var DiagnosticResult = ResultType("DiagnosticResult", func() {
	Attribute("backend", String, "Backend state", func() {
		Example("running")
	})
	Attribute("regions", ArrayOf(String), "Service regions")
	Required("backend", "regions")
})

// Inquiry service
var _ = Service("inquiry", func() {
	Description("Event catering inquiries")
	Error("validation_error", ValidationFailed)
	Error("bad_request", BadRequest)
	Error("storage_error", StorageFailed)

	Method("create", func() {
		Description("Submit an event inquiry")
		Payload(InquiryPayload)
		Result(InquiryResult)
		HTTP(func() {
			POST("/inquiry")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("validation_error", StatusUnprocessableEntity)
			Response("storage_error", StatusInternalServerError)
		})
	})

	Method("regions", func() {
		Description("List the regions the business serves")
		Result(ArrayOf(String))
		HTTP(func() {
			GET("/regions")
			Response(StatusOK)
		})
	})
})

var InquiryPayload = Type("InquiryPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(2)
		MaxLength(120)
		Example("Anna Huber")
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		Example("anna@example.com")
	})
	Attribute("phone", String, "Phone number", func() {
		MinLength(5)
		MaxLength(40)
		Example("+43664123456")
	})
	Attribute("event_date", String, "Event date (ISO or human-readable)", func() {
		MinLength(1)
		Example("2025-12-24")
	})
	Attribute("guests", Int, "Estimated number of guests", func() {
		Minimum(1)
		Maximum(1000)
		Example(50)
	})
	Attribute("location", String, "Event location / city", func() {
		MinLength(2)
		MaxLength(200)
		Example("Bregenz")
	})
	Attribute("event_type", String, "Event type (wedding, corporate, birthday, private)", func() {
		MinLength(2)
		MaxLength(100)
		Example("wedding")
	})
	Attribute("message", String, "Additional details", func() {
		MaxLength(2000)
	})
	Required("name", "email", "phone", "event_date", "guests", "location", "event_type")
})

var InquiryResult = ResultType("InquiryResult", func() {
	Attribute("id", String, "Identifier assigned by the document store")
	Attribute("status", String, "Submission status", func() {
		Enum("received")
	})
	Required("id", "status")
})
