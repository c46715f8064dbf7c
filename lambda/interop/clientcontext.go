// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// clientContextHeader mirrors the document mobile SDKs send, base64
// encoded, in the X-Amz-Client-Context header.
type clientContextHeader struct {
	Client struct {
		InstallationID string `json:"installation_id"`
		AppTitle       string `json:"app_title"`
		AppVersionName string `json:"app_version_name"`
		AppVersionCode string `json:"app_version_code"`
	} `json:"client"`
	Custom map[string]string `json:"custom"`
	Env    map[string]string `json:"env"`
}

// ParseClientContext decodes an X-Amz-Client-Context header value. An
// empty header, or one that carries no fields, yields nil.
func ParseClientContext(header string) (*ClientContext, error) {
	if header == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return nil, fmt.Errorf("invalid client context encoding: %w", err)
	}

	var doc clientContextHeader
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid client context document: %w", err)
	}

	clientContext := &ClientContext{
		InstallationID: doc.Client.InstallationID,
		AppTitle:       doc.Client.AppTitle,
		AppVersionName: doc.Client.AppVersionName,
		AppVersionCode: doc.Client.AppVersionCode,
		Custom:         doc.Custom,
		Env:            doc.Env,
	}
	if clientContext.IsEmpty() {
		return nil, nil
	}
	return clientContext, nil
}
