package response

import "fmt"

// StatusLine precedes every response. The lower-case reason phrase and the
// missing headers are part of the wire format.
const StatusLine = "HTTP/1.1 200 ok\r\n\r\n"

const htmlTemplate = `<html>
    <head>
        %s
    </head>
    <body>
        <h1>%s</h1>
    </body>
</html>
    `

func WrapHTTP(body string) string {
	return StatusLine + body
}

// WrapHTML places context inside the page heading as is, without escaping.
func WrapHTML(context string) string {
	return fmt.Sprintf(htmlTemplate, Favicon(), context)
}
