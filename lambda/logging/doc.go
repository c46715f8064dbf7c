// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
The shim emits two kinds of logging:

1. Internal logs: the shim's own logrus output on stderr, which the Lambda runtime forwards to the function's log stream
2. Platform logs: START, END and REPORT lines the local invoke server prints on stdout, in the format Lambda uses

The log level is fixed when the bootstrap is built and is the same string handed to the native library on every call.
*/
package logging
